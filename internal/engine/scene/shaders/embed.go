// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ShatterVertexShader animates each face along its Bezier flight path.
//
//go:embed shatter.vert
var ShatterVertexShader string

// ShatterFragmentShader samples the slide texture.
//
//go:embed shatter.frag
var ShatterFragmentShader string
