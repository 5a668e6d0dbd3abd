// File: walk.go
// Title: Lingo AST Traversal Utilities
// Description: Implements pre-order traversal and common tree utilities
//              for Lingo AST nodes. Dispatch happens through exhaustive
//              type switches over the sealed node set, so adding a node
//              variant is a compile-visible change here.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial traversal utilities

package ast

import (
	"fmt"
	"strings"
)

// Walk traverses the tree rooted at node in pre-order, calling fn for
// each node. If fn returns false the children of that node are skipped.
// Nil children are not visited.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			Walk(stmt, fn)
		}

	case *LetStatement:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ReturnStatement:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ExpressionStatement:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *PrefixExpression:
		if n.Operand != nil {
			Walk(n.Operand, fn)
		}

	case *InfixExpression:
		if n.Left != nil {
			Walk(n.Left, fn)
		}
		if n.Right != nil {
			Walk(n.Right, fn)
		}

	case *Identifier, *IntegerLiteral, *BooleanLiteral:
		// Terminal nodes
	}
}

// TreePrinter renders an AST as an indented multi-line structure dump,
// one node per line. Used by diagnostic output and the interactive shell.
type TreePrinter struct {
	buffer strings.Builder
	indent int
}

// NewTreePrinter creates a new tree printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// String returns the built tree dump
func (tp *TreePrinter) String() string {
	return tp.buffer.String()
}

// Reset clears the internal buffer
func (tp *TreePrinter) Reset() {
	tp.buffer.Reset()
	tp.indent = 0
}

func (tp *TreePrinter) writeIndent() {
	for i := 0; i < tp.indent; i++ {
		tp.buffer.WriteString("  ")
	}
}

func (tp *TreePrinter) writeLine(text string) {
	tp.writeIndent()
	tp.buffer.WriteString(text)
	tp.buffer.WriteString("\n")
}

// Print renders node into the printer's buffer
func (tp *TreePrinter) Print(node Node) {
	if node == nil {
		tp.writeLine("<nil>")
		return
	}

	switch n := node.(type) {
	case *Program:
		tp.writeLine("Program:")
		tp.indent++
		for _, stmt := range n.Statements {
			tp.Print(stmt)
		}
		tp.indent--

	case *LetStatement:
		tp.writeLine("LetStatement:")
		tp.indent++
		if n.Name != nil {
			tp.writeLine(fmt.Sprintf("Name: %s", n.Name.Name))
		}
		if n.Value != nil {
			tp.writeLine("Value:")
			tp.indent++
			tp.Print(n.Value)
			tp.indent--
		}
		tp.indent--

	case *ReturnStatement:
		tp.writeLine("ReturnStatement:")
		if n.Value != nil {
			tp.indent++
			tp.writeLine("Value:")
			tp.indent++
			tp.Print(n.Value)
			tp.indent--
			tp.indent--
		}

	case *ExpressionStatement:
		tp.writeLine("ExpressionStatement:")
		if n.Value != nil {
			tp.indent++
			tp.Print(n.Value)
			tp.indent--
		}

	case *Identifier:
		tp.writeLine(fmt.Sprintf("Identifier: %s", n.Name))

	case *IntegerLiteral:
		tp.writeLine(fmt.Sprintf("IntegerLiteral: %d", n.Value))

	case *BooleanLiteral:
		tp.writeLine(fmt.Sprintf("BooleanLiteral: %t", n.Value))

	case *PrefixExpression:
		tp.writeLine(fmt.Sprintf("PrefixExpression: %s", n.Operator))
		tp.indent++
		tp.Print(n.Operand)
		tp.indent--

	case *InfixExpression:
		tp.writeLine(fmt.Sprintf("InfixExpression: %s", n.Operator))
		tp.indent++
		tp.Print(n.Left)
		tp.Print(n.Right)
		tp.indent--
	}
}

// Collector accumulates nodes of interest during a traversal
type Collector struct {
	Statements  []Statement
	Identifiers []*Identifier
	Integers    []*IntegerLiteral
	Booleans    []*BooleanLiteral
	Operators   []string
}

// NewCollector creates a new node collector
func NewCollector() *Collector {
	return &Collector{
		Statements:  make([]Statement, 0),
		Identifiers: make([]*Identifier, 0),
		Integers:    make([]*IntegerLiteral, 0),
		Booleans:    make([]*BooleanLiteral, 0),
		Operators:   make([]string, 0),
	}
}

// Reset clears all collected nodes
func (c *Collector) Reset() {
	c.Statements = c.Statements[:0]
	c.Identifiers = c.Identifiers[:0]
	c.Integers = c.Integers[:0]
	c.Booleans = c.Booleans[:0]
	c.Operators = c.Operators[:0]
}

func (c *Collector) visit(node Node) bool {
	switch n := node.(type) {
	case Statement:
		c.Statements = append(c.Statements, n)
	case *Identifier:
		c.Identifiers = append(c.Identifiers, n)
	case *IntegerLiteral:
		c.Integers = append(c.Integers, n)
	case *BooleanLiteral:
		c.Booleans = append(c.Booleans, n)
	case *PrefixExpression:
		c.Operators = append(c.Operators, n.Operator)
	case *InfixExpression:
		c.Operators = append(c.Operators, n.Operator)
	}
	return true
}

// Utility functions for working with trees

// ValidateAST validates every node in the tree and returns all errors found
func ValidateAST(node Node) []error {
	errs := make([]error, 0)

	Walk(node, func(n Node) bool {
		if err := n.Validate(); err != nil {
			errs = append(errs, err)
			return false
		}
		return true
	})

	return errs
}

// ASTToString converts a tree to an indented structure dump
func ASTToString(node Node) string {
	printer := NewTreePrinter()
	printer.Print(node)
	return printer.String()
}

// CollectNodes gathers nodes of interest from a tree
func CollectNodes(node Node) *Collector {
	collector := NewCollector()
	Walk(node, collector.visit)
	return collector
}
