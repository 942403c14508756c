package asset

import "gopkg.in/yaml.v3"

// SubProgram is the metadata of one compiled shader stage.
type SubProgram struct {
	// RawProgramType is the serialized program type number.
	RawProgramType int
	// BlobIndex locates the compiled blob within the asset.
	BlobIndex uint32
	// Keywords are the shader keywords the variant was compiled with.
	Keywords []string
}

// ProgramType resolves the serialized type with the version-aware lookup.
func (s SubProgram) ProgramType(v Version) (ProgramType, bool) {
	return ProgramTypeFor(s.RawProgramType, v)
}

// NumericParam is a scalar, vector or matrix inside a constant buffer.
type NumericParam struct {
	Name string `yaml:"name"`
	// Index is the byte offset inside the buffer.
	Index     int `yaml:"index"`
	Rows      int `yaml:"rows"`
	Columns   int `yaml:"columns"`
	ArraySize int `yaml:"array_size"`
}

// Size returns the byte span the parameter occupies, with each row padded
// to a 16-byte register.
func (p NumericParam) Size() int {
	return 16 * max(p.Rows, 1) * max(p.ArraySize, 1)
}

// Contains reports whether the byte offset falls inside the parameter.
func (p NumericParam) Contains(offset int) bool {
	return offset >= p.Index && offset < p.Index+p.Size()
}

// ConstantBuffer is a declared constant buffer.
type ConstantBuffer struct {
	Name   string         `yaml:"name"`
	Slot   int            `yaml:"slot"`
	Size   int            `yaml:"size"`
	Params []NumericParam `yaml:"params"`
}

// NoSampler is the SamplerIndex of a texture without a sampler.
const NoSampler = -1

// TextureParam is a declared texture and its sampler.
type TextureParam struct {
	Name string `yaml:"name"`
	// Index is the texture slot.
	Index int `yaml:"index"`
	// SamplerIndex is the sampler slot, or NoSampler. It decodes as
	// NoSampler when absent from YAML.
	SamplerIndex int `yaml:"sampler_index"`
	Dim          int `yaml:"dim"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TextureParam) UnmarshalYAML(node *yaml.Node) error {
	type plain TextureParam
	v := plain{SamplerIndex: NoSampler}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*t = TextureParam(v)
	return nil
}

// Params is the parameter metadata of a sub-program.
type Params struct {
	ConstantBuffers []ConstantBuffer `yaml:"constant_buffers"`
	Textures        []TextureParam   `yaml:"textures"`
}

// Empty reports whether no parameters are declared.
func (p Params) Empty() bool {
	return len(p.ConstantBuffers) == 0 && len(p.Textures) == 0
}
