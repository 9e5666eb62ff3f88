package md5

import "strings"

type vector struct {
	name string
	data string
	hash string
}

func (v vector) input() []byte { return []byte(v.data) }

var vectors = []vector{
	// RFC 1321 appendix A.5
	{"Empty", "", "d41d8cd98f00b204e9800998ecf8427e"},
	{"A", "a", "0cc175b9c0f1b6a831c399e269772661"},
	{"ABC", "abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"MessageDigest", "message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	{"Alphabet", "abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	{"Alphanumeric", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "d174ab98d277d9f5a5611c2c9f419d9f"},
	{"Digits", strings.Repeat("1234567890", 8), "57edf4a22be3c955ac49da2e2107b67a"},

	{"Fox", "The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	{"FoxPeriod", "The quick brown fox jumps over the lazy dog.", "e4d909c290d0fb1ca068ffaddf22cbd0"},
	{"Newline", "hello\n", "b1946ac92492d2347c6235b4d2611184"},

	// padding and block boundaries
	{"Len55", strings.Repeat("a", 55), "ef1772b6dff9a122358552954ad0df65"},
	{"Len56", strings.Repeat("a", 56), "3b0c8ac703f828b04c6c197006d17218"},
	{"Len63", strings.Repeat("a", 63), "b06521f39153d618550606be297466d5"},
	{"Len64", strings.Repeat("a", 64), "014842d480b571495a4a0363793f7367"},
	{"Len65", strings.Repeat("a", 65), "c743a45e0d2e6a95cb859adae0248435"},
	{"Len119", strings.Repeat("a", 119), "8a7bd0732ed6a28ce75f6dabc90e1613"},
	{"Len120", strings.Repeat("a", 120), "5f61c0ccad4cac44c75ff505e1f1e537"},
	{"Million", strings.Repeat("a", 1000000), "7707d6ae4e027c70eea2a935c2296f21"},
}
