// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// key models a gettext entry identified by context, singular msgid,
// and optional plural msgid_plural. For non-plural entries, plural is empty.
type key struct {
	ctx    string
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// refSet maps each message to every place it is used.
type refSet map[key][]ref

// extractor holds the type information for one package.
type extractor struct {
	refs        refSet
	projectRoot string
	fset        *token.FileSet
	info        *types.Info
	i18nPkgs    map[string]struct{}
}

// findI18nPkgPaths returns the paths of packages named i18n that define a
// MsgKey type over string, however they are imported or aliased.
func findI18nPkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name == "i18n" && definesMsgKey(p.Types) {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

func definesMsgKey(pkg *types.Package) bool {
	if pkg == nil {
		return false
	}

	tn, ok := pkg.Scope().Lookup("MsgKey").(*types.TypeName)
	if !ok {
		return false
	}

	basic, ok := tn.Type().Underlying().(*types.Basic)

	return ok && basic.Kind() == types.String
}

// inspect records every message used in files.
func (e *extractor) inspect(files []*ast.File) {
	for _, f := range files {
		ast.Inspect(f, func(n ast.Node) bool {
			switch x := n.(type) {
			case *ast.CallExpr:
				e.handleCallExpr(x)
			case *ast.CompositeLit:
				e.handleCompositeLit(x)
			}

			return true
		})
	}
}

// constString evaluates expr to a constant string: literals, named
// constants and constant expressions such as "a" + "b".
func (e *extractor) constString(expr ast.Expr) (string, bool) {
	tv, ok := e.info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// isMsgKey reports whether t is the MsgKey type of one of the i18n packages.
func (e *extractor) isMsgKey(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil || obj.Name() != "MsgKey" {
		return false
	}

	_, ok = e.i18nPkgs[obj.Pkg().Path()]

	return ok
}

// addConst records expr as a msgid when it is a MsgKey-typed constant.
func (e *extractor) addConst(t types.Type, expr ast.Expr) {
	if !e.isMsgKey(t) {
		return
	}

	if msg, ok := e.constString(expr); ok {
		e.addRef(expr.Pos(), msg, "", "")
	}
}

// handleCompositeLit finds constants implicitly converted to MsgKey by
// struct, slice, array and map literals.
func (e *extractor) handleCompositeLit(x *ast.CompositeLit) {
	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok {
		t = p.Elem()
	}

	switch u := t.Underlying().(type) {
	case *types.Map:
		for _, elt := range x.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				e.addConst(u.Key(), kv.Key)
				e.addConst(u.Elem(), kv.Value)
			}
		}

	case *types.Slice:
		e.addElements(u.Elem(), x.Elts)

	case *types.Array:
		e.addElements(u.Elem(), x.Elts)

	case *types.Struct:
		for i, elt := range x.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				if id, ok := kv.Key.(*ast.Ident); ok {
					if field := fieldByName(u, id.Name); field != nil {
						e.addConst(field.Type(), kv.Value)
					}
				}

				continue
			}

			// Positional literals follow the declared field order.
			if i < u.NumFields() {
				e.addConst(u.Field(i).Type(), elt)
			}
		}
	}
}

func (e *extractor) addElements(elem types.Type, elts []ast.Expr) {
	for _, elt := range elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			elt = kv.Value // indexed array element
		}

		e.addConst(elem, elt)
	}
}

func fieldByName(s *types.Struct, name string) *types.Var {
	for i := range s.NumFields() {
		if f := s.Field(i); f.Name() == name {
			return f
		}
	}

	return nil
}

// handleCallExpr finds MsgKey conversions, Tr/TrC/TrN calls and
// constants passed to MsgKey parameters.
func (e *extractor) handleCallExpr(x *ast.CallExpr) {
	// i18n.MsgKey("Hello")
	if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 {
			e.addConst(tv.Type, x.Args[0])
		}

		return
	}

	if e.handleTrCall(x) {
		return
	}

	sig, ok := e.info.TypeOf(x.Fun).(*types.Signature)
	if !ok || sig.Params().Len() == 0 {
		return
	}

	params := sig.Params()
	last := params.Len() - 1

	for i, arg := range x.Args {
		var pt types.Type

		switch {
		case sig.Variadic() && i >= last:
			// f(xs...) passes a slice; its literal is handled on its own.
			if x.Ellipsis != token.NoPos {
				continue
			}

			slice, ok := params.At(last).Type().(*types.Slice)
			if !ok {
				continue
			}

			pt = slice.Elem()
		case i <= last:
			pt = params.At(i).Type()
		default:
			return
		}

		e.addConst(pt, arg)
	}
}

// handleTrCall records the msgid of a call into the i18n package's
// Tr family and reports whether x was such a call.
func (e *extractor) handleTrCall(x *ast.CallExpr) bool {
	var ident *ast.Ident

	switch fun := x.Fun.(type) {
	case *ast.Ident:
		ident = fun
	case *ast.SelectorExpr:
		ident = fun.Sel
	default:
		return false
	}

	fn, ok := e.info.Uses[ident].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}

	if _, ok := e.i18nPkgs[fn.Pkg().Path()]; !ok {
		return false
	}

	args := x.Args

	switch fn.Name() {
	case "Tr": // Tr(ctx, "msg", ...)
		if len(args) >= 2 {
			if msg, ok := e.constString(args[1]); ok {
				e.addRef(args[1].Pos(), msg, "", "")
			}
		}
	case "TrC": // TrC(ctx, "ctx", "msg", ...)
		if len(args) >= 3 {
			msgctx, ok1 := e.constString(args[1])
			msg, ok2 := e.constString(args[2])

			if ok1 && ok2 {
				e.addRef(args[2].Pos(), msg, msgctx, "")
			}
		}
	case "TrN": // TrN(ctx, "singular", "plural", n, ...)
		if len(args) >= 4 {
			singular, ok1 := e.constString(args[1])
			plural, ok2 := e.constString(args[2])

			if ok1 && ok2 {
				e.addRef(args[1].Pos(), singular, "", plural)
			}
		}
	default:
		return false
	}

	return true
}

// addRef records a msgid reference relative to the project root.
func (e *extractor) addRef(pos token.Pos, msg, msgctx, plural string) {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.projectRoot, file); err == nil {
		file = rel
	}

	k := key{ctx: msgctx, id: msg, plural: plural}

	e.refs[k] = append(e.refs[k], ref{file: filepath.ToSlash(file), line: p.Line})
}
