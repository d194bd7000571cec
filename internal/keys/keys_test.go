package keys

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"xo":            "XO",
		"  Chess ":      "CHESS",
		"domino":        "DOMINO",
		"snakes ladder": "SNAKES_LADDER",
		"tic-tac-toe":   "TIC_TAC_TOE",
		"   ":           "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
