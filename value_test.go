// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueKind(t *testing.T) {
	tests := []struct {
		v    Value
		want Kind
	}{
		{Value{}, 0},
		{Null, 'n'},
		{True, 't'},
		{False, 'f'},
		{Bool(true), 't'},
		{Bool(false), 'f'},
		{Int(42), '0'},
		{Float(1.5), '0'},
		{String("x"), '"'},
		{Array(), '['},
		{Object(nil), '{'},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.v.Kind())
	}
}

func TestValueAccessors(t *testing.T) {
	require.True(t, True.Bool())
	require.False(t, False.Bool())

	require.True(t, Int(42).IsInt())
	require.Equal(t, int64(42), Int(42).Int())
	require.Equal(t, float64(42), Int(42).Float())
	require.Equal(t, int64(math.MinInt64), Int(math.MinInt64).Int())

	require.False(t, Float(1.5).IsInt())
	require.Equal(t, 1.5, Float(1.5).Float())
	require.False(t, Null.IsInt())

	require.Equal(t, "hello", String("hello").String())

	arr := Array(Int(1), String("two"))
	require.Len(t, arr.Array(), 2)
	require.Equal(t, int64(1), arr.Array()[0].Int())
	require.Equal(t, "two", arr.Array()[1].String())

	obj := Object(map[string]Value{"a": Null})
	require.Len(t, obj.Object(), 1)
	require.Equal(t, Null, obj.Object()["a"])
}

func TestValuePanics(t *testing.T) {
	require.PanicsWithValue(t, "invalid JSON value kind: null", func() { Null.Bool() })
	require.PanicsWithValue(t, "invalid JSON value kind: string", func() { String("x").Int() })
	require.PanicsWithValue(t, "invalid JSON value kind: number", func() { Int(1).Array() })
	require.PanicsWithValue(t, "invalid JSON value kind: array", func() { Array().Object() })
	require.PanicsWithValue(t, "invalid JSON value kind: object", func() { Object(nil).Float() })
	require.PanicsWithValue(t, "invalid JSON value kind: true", func() { True.Object() })
	require.PanicsWithValue(t, "invalid JSON value kind: <invalid jsontree.Kind: '\\x00'>", func() { Value{}.Bool() })
	require.PanicsWithValue(t, "JSON number is not an integer", func() { Float(1.5).Int() })
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{True, "true"},
		{False, "false"},
		{Int(0), "0"},
		{Int(-5), "-5"},
		{Float(1.5), "1.5"},
		{Float(-0.25), "-0.25"},
		{String("hi"), "hi"},
		{String(""), ""},
		{Array(Int(1)), "<array>"},
		{Object(nil), "<object>"},
		{Value{}, "<invalid jsontree.Value>"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.v.String())
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{'n', "null"},
		{'f', "false"},
		{'t', "true"},
		{'"', "string"},
		{'0', "number"},
		{'[', "array"},
		{'{', "object"},
		{0, "<invalid jsontree.Kind: '\\x00'>"},
		{'x', "<invalid jsontree.Kind: 'x'>"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.k.String())
	}
}
