package accuracy

import "github.com/mwiater/agential/internal/parse"

// EM reports whether answer and key are equal after answer normalization.
func EM(answer, key string) bool {
	return parse.NormalizeAnswer(answer) == parse.NormalizeAnswer(key)
}
