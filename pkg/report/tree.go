package report

import (
	"sort"
	"strings"
)

const (
	dirIcon    = "📁 "
	fileIcon   = "📄 "
	indentUnit = "  "
)

// FileTree is a directory node holding the files directly inside it and its
// child directories.
type FileTree struct {
	Name     string
	Files    []string
	Children map[string]*FileTree
}

// BuildFileTree builds a tree from slash-separated relative file paths. The
// result does not depend on the order of relPaths.
func BuildFileTree(relPaths []string) *FileTree {
	root := newFileTree("")
	for _, relPath := range relPaths {
		segments := strings.Split(relPath, "/")
		node := root
		for _, dir := range segments[:len(segments)-1] {
			node = node.child(dir)
		}
		node.Files = append(node.Files, segments[len(segments)-1])
	}
	return root
}

func newFileTree(name string) *FileTree {
	return &FileTree{Name: name, Children: map[string]*FileTree{}}
}

func (t *FileTree) child(name string) *FileTree {
	c, ok := t.Children[name]
	if !ok {
		c = newFileTree(name)
		t.Children[name] = c
	}
	return c
}

// Paths returns every file path in the tree, joined back from its segments,
// in rendering order.
func (t *FileTree) Paths() []string {
	var paths []string
	t.walk("", func(dir, file string) {
		if dir == "" {
			paths = append(paths, file)
			return
		}
		paths = append(paths, dir+"/"+file)
	})
	return paths
}

func (t *FileTree) walk(prefix string, visit func(dir, file string)) {
	for _, file := range sortedCopy(t.Files) {
		visit(prefix, file)
	}
	for _, name := range t.childNames() {
		childPrefix := name
		if prefix != "" {
			childPrefix = prefix + "/" + name
		}
		t.Children[name].walk(childPrefix, visit)
	}
}

// Render returns the indented listing. Root files come first without a
// header; each directory prints a header followed by its files and
// subdirectories one level deeper.
func (t *FileTree) Render() string {
	var b strings.Builder
	for _, file := range sortedCopy(t.Files) {
		b.WriteString(fileIcon + file + "\n")
	}
	for _, name := range t.childNames() {
		t.Children[name].render(&b, 0)
	}
	return b.String()
}

func (t *FileTree) render(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(indentUnit, depth) + dirIcon + t.Name + "\n")
	fileIndent := strings.Repeat(indentUnit, depth+1)
	for _, file := range sortedCopy(t.Files) {
		b.WriteString(fileIndent + fileIcon + file + "\n")
	}
	for _, name := range t.childNames() {
		t.Children[name].render(b, depth+1)
	}
}

func (t *FileTree) childNames() []string {
	names := make([]string, 0, len(t.Children))
	for name := range t.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedCopy(values []string) []string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return sorted
}
