package editor

import "testing"

func findChild(t *testing.T, n *TreeNode, name string) *TreeNode {
	t.Helper()
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("child %q not found under %q", name, n.Path)
	return nil
}

func TestBuildTreeNesting(t *testing.T) {
	root := BuildTree([]string{
		"/README.md",
		"/src/main.go",
		"/src/util/helpers.go",
	})

	if root.Type != NodeFolder || root.Path != "/" {
		t.Fatalf("unexpected root %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(root.Children))
	}

	readme := findChild(t, root, "README.md")
	if readme.Type != NodeFile || readme.Path != "/README.md" {
		t.Errorf("unexpected README node %+v", readme)
	}

	src := findChild(t, root, "src")
	if src.Type != NodeFolder || src.Path != "/src" {
		t.Errorf("unexpected src node %+v", src)
	}
	if len(src.Children) != 2 {
		t.Fatalf("expected 2 children under /src, got %d", len(src.Children))
	}

	util := findChild(t, src, "util")
	if util.Type != NodeFolder {
		t.Errorf("expected util folder, got %+v", util)
	}
	helper := findChild(t, util, "helpers.go")
	if helper.Type != NodeFile || helper.Path != "/src/util/helpers.go" {
		t.Errorf("unexpected helpers node %+v", helper)
	}
}

func TestBuildTreeSharedPrefixDeDuplicated(t *testing.T) {
	root := BuildTree([]string{
		"/src/a.go",
		"/src/b.go",
		"/src/c.go",
	})

	if len(root.Children) != 1 {
		t.Fatalf("expected one shared src folder, got %d children", len(root.Children))
	}
	src := root.Children[0]
	if len(src.Children) != 3 {
		t.Errorf("expected 3 files under src, got %d", len(src.Children))
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	root := BuildTree(nil)
	if root == nil || len(root.Children) != 0 {
		t.Errorf("expected empty root, got %+v", root)
	}
}

func TestBuildTreeSkipsEmptySegments(t *testing.T) {
	root := BuildTree([]string{"//weird//path.txt"})

	weird := findChild(t, root, "weird")
	file := findChild(t, weird, "path.txt")
	if file.Type != NodeFile {
		t.Errorf("expected file node, got %+v", file)
	}
}

func TestProjectTreeReflectsCurrentStore(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": "a"})

	before := s.ProjectTree()
	if len(before.Children) != 1 {
		t.Fatalf("expected 1 node, got %d", len(before.Children))
	}

	_ = s.CreateFile("/docs/guide.md", "", "")

	after := s.ProjectTree()
	if len(after.Children) != 2 {
		t.Errorf("expected rebuild to include new file, got %d children", len(after.Children))
	}
	// The earlier tree is a detached value, not a live view.
	if len(before.Children) != 1 {
		t.Error("previously returned tree mutated in place")
	}
}
