package shader

import (
	"strings"
	"testing"
)

func TestBuiltinSources(t *testing.T) {
	for _, name := range []string{"base", "fur"} {
		vs, fs, err := Source(name)
		if err != nil {
			t.Fatalf("Source(%q): %v", name, err)
		}
		for _, src := range []string{vs, fs} {
			if !strings.HasPrefix(src, "#version 410 core") {
				t.Errorf("%s: missing version header", name)
			}
		}
	}
}

func TestFurShaderDeclaresShellParameters(t *testing.T) {
	vs, fs, err := Source("fur")
	if err != nil {
		t.Fatal(err)
	}
	src := vs + fs

	for _, name := range []string{
		"_Layer", "_FurLength", "_FurDensity", "_FurThinness", "_FurShading",
		"_FurColor", "_WindDirection", "_WindStrength", "_FurGravityStrength",
		"_UseVerticalDirection", "_VerticalDirection", "_FurTex",
		"_BrushPos", "_BrushRadius", "_BrushStrength", "_BrushFalloff",
		"_SweepPos", "_SweepDir", "_SweepRadius", "_SweepStrength", "_SweepFalloff",
		"_SplitStart", "_SplitEnd", "_SplitStrength", "_SplitWidth", "_SplitFalloff",
		"_SplitHighlightColor",
	} {
		if !strings.Contains(src, " "+name+";") {
			t.Errorf("uniform %s not declared", name)
		}
	}
}

func TestUnknownSource(t *testing.T) {
	if _, _, err := Source("grass"); err == nil {
		t.Error("expected error for unknown program")
	}
}
