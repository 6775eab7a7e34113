// Package tokens exports a brand's palettes and type system as CSS custom
// properties.
package tokens

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	"github.com/brandkit/api/typescale"
)

// RootFontSize is the px size that 1rem is assumed to equal.
const RootFontSize = 16

// CSS renders a :root block. Output depends only on the arguments, in the
// order given.
func CSS(brand models.Brand, palettes []models.ColorPalette, scale []typescale.ScaleValue, styles []models.TypeStyle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s design tokens */\n", comment(brand.Name))
	b.WriteString(":root {\n")

	names := newSlugger()
	for _, p := range palettes {
		name := names.slug(p.Name, "palette")
		for _, step := range p.Steps {
			prop := fmt.Sprintf("--%s-%s", name, step.Name)
			decl(&b, prop, step.Values.Hex)
			oklch, _ := palette.FormatValues(step.Values, palette.FormatOKLCH)
			decl(&b, prop+"-oklch", oklch)
		}
	}

	for _, v := range scale {
		prop := "--font-size-" + v.Label
		decl(&b, prop, number(v.Size)+"px")
		decl(&b, prop+"-rem", number(v.Size/RootFontSize)+"rem")
	}

	sizes := make(map[string]bool, len(scale))
	for _, v := range scale {
		sizes[v.Label] = true
	}
	styleNames := newSlugger()
	for _, s := range styles {
		prefix := "--type-" + styleNames.slug(s.Name, "style")
		if sizes[s.ScaleStep] {
			decl(&b, prefix+"-size", "var(--font-size-"+s.ScaleStep+")")
		} else {
			fmt.Fprintf(&b, "  /* %s: scale step %s is not in the current scale */\n", comment(s.Name), comment(s.ScaleStep))
		}
		decl(&b, prefix+"-weight", strconv.Itoa(s.FontWeight))
		decl(&b, prefix+"-line-height", number(s.LineHeight))
		decl(&b, prefix+"-letter-spacing", number(s.LetterSpacing)+"em")
		if s.OpticalSize > 0 {
			decl(&b, prefix+"-optical-size", number(s.OpticalSize))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func decl(b *strings.Builder, prop, value string) {
	fmt.Fprintf(b, "  %s: %s;\n", prop, value)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func comment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

// slugger hands out unique lower-case identifiers. It maps every slug it
// has returned to the last suffix tried for it.
type slugger map[string]int

func newSlugger() slugger {
	return slugger{}
}

func (s slugger) slug(name, fallback string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) && r < unicode.MaxASCII || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = fallback
	}

	if s[slug] == 0 {
		s[slug] = 1
		return slug
	}
	for n := s[slug] + 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", slug, n)
		if s[candidate] == 0 {
			s[slug] = n
			s[candidate] = 1
			return candidate
		}
	}
}
