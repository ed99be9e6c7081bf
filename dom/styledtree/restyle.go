package styledtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/tree"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyTree is returned if Restyle is called with an empty tree.
var ErrEmptyTree = errors.New("cannot restyle empty tree")

// ErrNoStyleSheet is returned if Restyle is called without a stylesheet.
var ErrNoStyleSheet = errors.New("no stylesheet to restyle with")

// Restyle matches every node of the tree rooted at root against a stylesheet
// and stores the resulting style on the node (see StyNode.Styles).
//
// Matching is done concurrently by at most workers goroutines. With
// workers < 1, the number of goroutines is unlimited.
func Restyle(root *StyNode, sheet style.Styler, workers int) error {
	if root == nil {
		return ErrEmptyTree
	}
	if sheet == nil {
		return ErrNoStyleSheet
	}
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	count := 0
	root.Walk(func(n *tree.Node[*StyNode]) bool {
		sn := Node(n)
		count++
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("styling %s: %v", dom.Path(sn), r)
				}
			}()
			sn.SetStyles(sheet.Match(sn))
			return nil
		})
		return true
	})
	err := g.Wait()
	tracer().P("nodes", count).Debugf("restyled tree %s", dom.Path(root))
	return err
}
