package kleinian

import "testing"

func TestLetterInv(t *testing.T) {
	pairs := map[Letter]Letter{A: AInv, B: BInv, AInv: A, BInv: B}
	for l, want := range pairs {
		if got := l.Inv(); got != want {
			t.Errorf("%v.Inv() = %v, want %v", l, got, want)
		}
		if got := l.Inv().Inv(); got != l {
			t.Errorf("%v.Inv().Inv() = %v, want %v", l, got, l)
		}
	}
}

func TestLetterString(t *testing.T) {
	want := map[Letter]string{A: "a", B: "b", AInv: "A", BInv: "B"}
	for l, s := range want {
		if got := l.String(); got != s {
			t.Errorf("Letter(%d).String() = %q, want %q", l, got, s)
		}
	}
}

func TestSuccessors(t *testing.T) {
	for l := A; l <= BInv; l++ {
		succ := successors[l]
		if succ[1] != l {
			t.Errorf("%v: middle successor = %v, want %v", l, succ[1], l)
		}
		if want := (l + 1) % 4; succ[0] != want {
			t.Errorf("%v: first successor = %v, want %v", l, succ[0], want)
		}
		if want := (l + 3) % 4; succ[2] != want {
			t.Errorf("%v: third successor = %v, want %v", l, succ[2], want)
		}
		for _, s := range succ {
			if s == l.Inv() {
				t.Errorf("%v: successor %v cancels the final letter", l, s)
			}
		}
	}
}
