package index

import (
	"reflect"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PERMUTERM INDEX TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestBuildPermuterm_PrefixLookup(t *testing.T) {
	vocab := []string{"apple", "apply", "ape"}
	perm := BuildPermuterm(vocab)

	got := perm.Lookup("app")
	want := []string{"apple", "apply"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(\"app\") = %v, want %v", got, want)
	}
}

func TestBuildPermuterm_WholeTermKey(t *testing.T) {
	vocab := []string{"cat", "cats"}
	perm := BuildPermuterm(vocab)

	got := perm.Lookup("cat")
	want := []string{"cat", "cats"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(\"cat\") = %v, want %v", got, want)
	}
}

func TestBuildReversePermuterm_SuffixLookup(t *testing.T) {
	vocab := []string{"bat", "cat", "call"}
	rev := BuildReversePermuterm(vocab)

	got := rev.Lookup(reverseString("at"))
	want := []string{"bat", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(reverse(\"at\")) = %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	got := rotations("ab$")
	want := []string{"ab$", "b$a", "$ab"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rotations(\"ab$\") = %v, want %v", got, want)
	}
}

func TestPermutermKey(t *testing.T) {
	cases := []struct {
		rotation string
		want     string
	}{
		{"ab$", ""},
		{"b$a", "a"},
		{"$ab", "ab"},
	}
	for _, c := range cases {
		key, ok := permutermKey(c.rotation)
		if !ok {
			t.Fatalf("permutermKey(%q): no sentinel found", c.rotation)
		}
		if key != c.want {
			t.Errorf("permutermKey(%q) = %q, want %q", c.rotation, key, c.want)
		}
	}
}
