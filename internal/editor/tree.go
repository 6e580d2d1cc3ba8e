package editor

import "strings"

// NodeType distinguishes files from folders in the project tree.
type NodeType string

// Project tree node types.
const (
	NodeFile   NodeType = "file"
	NodeFolder NodeType = "folder"
)

// TreeNode is one node of the hierarchical project tree.
type TreeNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Type     NodeType    `json:"type"`
	Children []*TreeNode `json:"children,omitempty"`
}

// ProjectTree rebuilds the hierarchical tree from the flat document paths.
// It is computed fresh on every call, never cached; cost is linear in the
// total number of path segments.
func (s *Session) ProjectTree() *TreeNode {
	return BuildTree(s.store.Paths())
}

// BuildTree constructs a tree from a sorted list of slash-separated paths,
// de-duplicating shared prefixes as folder nodes.
func BuildTree(paths []string) *TreeNode {
	root := &TreeNode{Name: "/", Path: "/", Type: NodeFolder}

	for _, path := range paths {
		segments := strings.Split(path, "/")
		node := root
		walked := ""
		for i, seg := range segments {
			if seg == "" {
				continue
			}
			walked += "/" + seg
			last := i == len(segments)-1

			nodeType := NodeFolder
			if last {
				nodeType = NodeFile
			}

			child := node.child(seg, nodeType)
			if child == nil {
				child = &TreeNode{Name: seg, Path: walked, Type: nodeType}
				node.Children = append(node.Children, child)
			}
			node = child
		}
	}

	return root
}

// child finds a direct child by name and type.
func (n *TreeNode) child(name string, nodeType NodeType) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name && c.Type == nodeType {
			return c
		}
	}
	return nil
}
