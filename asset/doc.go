// Package asset describes the metadata that accompanies a compiled shader
// sub-program: the GPU platform it targets, the engine version that wrote
// it, its program type, and its declared parameters.
//
// Container parsing is out of scope; callers fill these types from their
// own asset readers, or from YAML via the struct tags on Params.
package asset
