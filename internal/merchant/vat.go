package merchant

import (
	"regexp"

	"github.com/mhulst/bonscan/internal/textutil"
)

// Dutch VAT numbers print as NL + 9 digits + B + 2 digits. OCR regularly
// turns digits into lookalike letters, so the scan accepts the confusable
// class and maps letters back to the digit they were misread from.
var reVAT = regexp.MustCompile(`N[LI1][0-9ODQILSZGB]{9}[B8][0-9ODQILSZGB]{2}`)

var confusedDigit = map[byte]byte{
	'O': '0', 'D': '0', 'Q': '0',
	'I': '1', 'L': '1',
	'Z': '2',
	'S': '5',
	'G': '6',
	'B': '8',
}

// canonicalVAT rewrites a raw confusable match into the NL#########B## form.
func canonicalVAT(raw string) string {
	out := make([]byte, len(raw))
	out[0], out[1] = 'N', 'L'
	for i := 2; i < len(raw); i++ {
		c := raw[i]
		if i == 11 {
			// the literal B separator, possibly misread as 8
			out[i] = 'B'
			continue
		}
		if d, ok := confusedDigit[c]; ok {
			c = d
		}
		out[i] = c
	}
	return string(out)
}

// matchVAT scans the text for an OCR-tolerant VAT number that resolves to a
// registered brand. Lowest text offset wins; unknown identifiers are skipped.
func matchVAT(text string, reg *Registry) string {
	compact := textutil.UpperAlnum(text)
	for _, raw := range reVAT.FindAllString(compact, -1) {
		if name, ok := reg.BrandForVAT(canonicalVAT(raw)); ok {
			return name
		}
	}
	return ""
}
