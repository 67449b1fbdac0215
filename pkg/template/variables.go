package template

import (
	"slices"
	"text/template/parse"
)

// discoverVariables returns the sorted names of the top-level data fields the
// template references, such as "count" for {{ .count }} or {{ $.count }}.
// References inside range and with bodies are relative to a different dot
// and are skipped, except when rooted at $.
func discoverVariables(trees map[string]*parse.Tree) []string {
	seen := make(map[string]struct{})
	for _, tree := range trees {
		if tree == nil || tree.Root == nil {
			continue
		}
		walkNode(tree.Root, true, seen)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func walkNode(node parse.Node, rootDot bool, seen map[string]struct{}) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			walkNode(child, rootDot, seen)
		}
	case *parse.ActionNode:
		walkNode(n.Pipe, rootDot, seen)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			walkNode(cmd, rootDot, seen)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			walkNode(arg, rootDot, seen)
		}
	case *parse.FieldNode:
		if rootDot && len(n.Ident) > 0 {
			seen[n.Ident[0]] = struct{}{}
		}
	case *parse.VariableNode:
		if len(n.Ident) > 1 && n.Ident[0] == "$" {
			seen[n.Ident[1]] = struct{}{}
		}
	case *parse.ChainNode:
		walkNode(n.Node, rootDot, seen)
	case *parse.IfNode:
		walkBranch(&n.BranchNode, rootDot, false, seen)
	case *parse.RangeNode:
		walkBranch(&n.BranchNode, rootDot, true, seen)
	case *parse.WithNode:
		walkBranch(&n.BranchNode, rootDot, true, seen)
	case *parse.TemplateNode:
		walkNode(n.Pipe, rootDot, seen)
	}
}

func walkBranch(b *parse.BranchNode, rootDot, rebindsDot bool, seen map[string]struct{}) {
	walkNode(b.Pipe, rootDot, seen)
	walkNode(b.List, rootDot && !rebindsDot, seen)
	walkNode(b.ElseList, rootDot, seen)
}
