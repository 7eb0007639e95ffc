package htmljs

import "strings"

var knownElementNames = strings.Fields(`a abbr acronym address applet area article aside audio b base basefont bdi bdo big blink
	blockquote body br button canvas caption center cite code col colgroup command data datagrid datalist dd del details
	dfn dir div dl dt em embed eventsource fieldset figcaption figure font footer form frame frameset h1 h2 h3 h4 h5 h6
	head header hgroup hr html i iframe img input ins isindex kbd keygen label legend li link main map mark menu meta
	meter nav noframes noscript object ol optgroup option output p param pre progress q rp rt ruby s samp script section
	select small source span strike strong style sub summary sup table tbody td textarea tfoot th thead time title tr
	track tt u ul var video wbr`)

// SVG element names keep their mixed case; they are matched case-sensitively.
var knownSVGElementNames = strings.Fields(`altGlyph altGlyphDef altGlyphItem animate animateColor animateMotion
	animateTransform circle clipPath color-profile cursor defs desc ellipse feBlend feColorMatrix feComponentTransfer
	feComposite feConvolveMatrix feDiffuseLighting feDisplacementMap feDistantLight feFlood feFuncA feFuncB feFuncG
	feFuncR feGaussianBlur feImage feMerge feMergeNode feMorphology feOffset fePointLight feSpecularLighting
	feSpotLight feTile feTurbulence filter font font-face font-face-format font-face-name font-face-src font-face-uri
	foreignObject g glyph glyphRef hkern image line linearGradient marker mask metadata missing-glyph path pattern
	polygon polyline radialGradient rect set stop style svg switch symbol text textPath title tref tspan use view vkern`)

var voidElementNames = strings.Fields(`area base br col command embed hr img input keygen link meta param source track wbr`)

var (
	knownElements    = nameSet(knownElementNames, ASCIILowerCase)
	voidElements     = nameSet(voidElementNames, ASCIILowerCase)
	knownSVGElements = nameSet(knownSVGElementNames, func(s string) string { return s })
	// svgByLower restores the canonical mixed case of an SVG element from its folded form.
	svgByLower = func() map[string]string {
		m := make(map[string]string, len(knownSVGElementNames))
		for _, n := range knownSVGElementNames {
			m[ASCIILowerCase(n)] = n
		}
		return m
	}()
)

func nameSet(names []string, fold func(string) string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[fold(n)] = struct{}{}
	}
	return m
}

// ASCIILowerCase folds A-Z to a-z and leaves every other rune untouched.
// Tag and attribute names are matched over the ASCII alphabet only.
func ASCIILowerCase(s string) string {
	return asciiMap(s, 'A', 'Z', 'a'-'A')
}

// ASCIIUpperCase folds a-z to A-Z and leaves every other rune untouched.
func ASCIIUpperCase(s string) string {
	return asciiMap(s, 'a', 'z', 'A'-'a')
}

func asciiMap(s string, lo, hi byte, delta int) string {
	i := 0
	for i < len(s) && (s[i] < lo || s[i] > hi) {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= lo && b[i] <= hi {
			b[i] = byte(int(b[i]) + delta)
		}
	}
	return string(b)
}

func IsVoidElement(name string) bool {
	_, ok := voidElements[ASCIILowerCase(name)]
	return ok
}

func IsKnownElement(name string) bool {
	_, ok := knownElements[ASCIILowerCase(name)]
	return ok
}

func IsKnownSVGElement(name string) bool {
	_, ok := knownSVGElements[name]
	return ok
}

// ElementName returns the name a tag is written with in markup: the mixed-case
// form for known SVG elements, the ASCII lower-case form otherwise.
func ElementName(tagName string) string {
	lower := ASCIILowerCase(tagName)
	if _, ok := knownElements[lower]; ok {
		return lower
	}
	if svg, ok := svgByLower[lower]; ok {
		return svg
	}
	return lower
}
