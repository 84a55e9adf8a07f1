package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type ranking: Null < Bool < Number < String < Array < Mapping < Node
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Mapping", FromSlice(nil), FromKeyVals(nil), -1},
		{"Mapping < Node", FromKeyVals(nil), NewNode(nil), -1},

		// Bool comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number comparison: integers before floats, never equal across
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Int == Int", FromInt(3), FromInt(3), 0},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Int < Float same value", FromInt(1), FromFloat(1.0), -1},

		// String comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Null comparison
		{"Null == Null", Null(), Null(), 0},

		// Array comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Mapping comparison, attribute order significant
		{"Empty Mapping == Empty Mapping", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Mapping < Long Mapping",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}, {Key: FromString("b"), Val: FromInt(2)}}),
			-1},
		{"Mapping Key Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(1)}}),
			-1},
		{"Mapping Value Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(2)}}),
			-1},
		{"Mapping Order Significant",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}, {Key: FromString("b"), Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(2)}, {Key: FromString("a"), Val: FromInt(1)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func mkNode(kvs ...KeyVal) *Node {
	return NewNode(kvs)
}

func kv(k string, v *Node) KeyVal {
	return KeyVal{Key: FromString(k), Val: v}
}

func TestSameIdentity(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{
			"same class and name",
			mkNode(kv(ClassField, FromString("BodyGroup")), kv(NameField, FromString("Torso"))),
			mkNode(kv(ClassField, FromString("BodyGroup")), kv(NameField, FromString("Torso")), kv("visible", FromBool(true))),
			true,
		},
		{
			"different name",
			mkNode(kv(ClassField, FromString("BodyGroup")), kv(NameField, FromString("Torso"))),
			mkNode(kv(ClassField, FromString("BodyGroup")), kv(NameField, FromString("Legs"))),
			false,
		},
		{
			"different class",
			mkNode(kv(ClassField, FromString("BodyGroup")), kv(NameField, FromString("Torso"))),
			mkNode(kv(ClassField, FromString("Choice")), kv(NameField, FromString("Torso"))),
			false,
		},
		{
			"one name missing",
			mkNode(kv(ClassField, FromString("BodyGroup")), kv(NameField, FromString("Torso"))),
			mkNode(kv(ClassField, FromString("BodyGroup"))),
			false,
		},
		{
			"no names equal attrs",
			mkNode(kv(ClassField, FromString("Shim")), kv("slot", FromInt(2))),
			mkNode(kv("slot", FromInt(2)), kv(ClassField, FromString("Shim"))),
			true,
		},
		{
			"no names differing attrs",
			mkNode(kv(ClassField, FromString("Shim")), kv("slot", FromInt(2))),
			mkNode(kv(ClassField, FromString("Shim")), kv("slot", FromInt(3))),
			false,
		},
		{
			"children excluded from identity",
			mkNode(kv(ClassField, FromString("Shim")), kv(ChildrenField, FromSlice([]*Node{mkNode(kv(NameField, FromString("A")))}))),
			mkNode(kv(ClassField, FromString("Shim"))),
			true,
		},
		{
			"no class on either side",
			mkNode(kv(NameField, FromString("Torso"))),
			mkNode(kv(NameField, FromString("Torso"))),
			true,
		},
		{
			"scalars by equality",
			FromInt(1),
			FromInt(1),
			true,
		},
		{
			"distinct scalars",
			FromInt(1),
			FromInt(2),
			false,
		},
		{
			"node vs scalar",
			mkNode(kv(NameField, FromString("Torso"))),
			FromString("Torso"),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameIdentity(tt.a, tt.b); got != tt.want {
				t.Errorf("SameIdentity() = %v, want %v", got, tt.want)
			}
			if got := SameIdentity(tt.b, tt.a); got != tt.want {
				t.Errorf("SameIdentity(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}
