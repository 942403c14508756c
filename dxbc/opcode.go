// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import "fmt"

// Opcode is a shader model 4/5 instruction opcode (token bits 0..10).
type Opcode uint16

// Opcodes in token order.
const (
	OpAdd Opcode = iota
	OpAnd
	OpBreak
	OpBreakc
	OpCall
	OpCallc
	OpCase
	OpContinue
	OpContinuec
	OpCut
	OpDefault
	OpDerivRtx
	OpDerivRty
	OpDiscard
	OpDiv
	OpDp2
	OpDp3
	OpDp4
	OpElse
	OpEmit
	OpEmitthencut
	OpEndif
	OpEndloop
	OpEndswitch
	OpEq
	OpExp
	OpFrc
	OpFtoi
	OpFtou
	OpGe
	OpIadd
	OpIf
	OpIeq
	OpIge
	OpIlt
	OpImad
	OpImax
	OpImin
	OpImul
	OpIne
	OpIneg
	OpIshl
	OpIshr
	OpItof
	OpLabel
	OpLd
	OpLdMs
	OpLog
	OpLoop
	OpLt
	OpMad
	OpMin
	OpMax
	OpCustomdata
	OpMov
	OpMovc
	OpMul
	OpNe
	OpNop
	OpNot
	OpOr
	OpResinfo
	OpRet
	OpRetc
	OpRoundNe
	OpRoundNi
	OpRoundPi
	OpRoundZ
	OpRsq
	OpSample
	OpSampleC
	OpSampleCLz
	OpSampleL
	OpSampleD
	OpSampleB
	OpSqrt
	OpSwitch
	OpSincos
	OpUdiv
	OpUlt
	OpUge
	OpUmul
	OpUmad
	OpUmax
	OpUmin
	OpUshr
	OpUtof
	OpXor
	OpDclResource
	OpDclConstantbuffer
	OpDclSampler
	OpDclIndexrange
	OpDclOutputtopology
	OpDclInputprimitive
	OpDclMaxout
	OpDclInput
	OpDclInputSgv
	OpDclInputSiv
	OpDclInputPs
	OpDclInputPsSgv
	OpDclInputPsSiv
	OpDclOutput
	OpDclOutputSgv
	OpDclOutputSiv
	OpDclTemps
	OpDclIndexabletemp
	OpDclGlobalflags
	OpReserved0
	OpLod
	OpGather4
	OpSamplePos
	OpSampleInfo
	OpReserved1
	OpHsDecls
	OpHsControlPointPhase
	OpHsForkPhase
	OpHsJoinPhase
	OpEmitStream
	OpCutStream
	OpEmitthencutStream
	OpFcall
	OpBufinfo
	OpDerivRtxCoarse
	OpDerivRtxFine
	OpDerivRtyCoarse
	OpDerivRtyFine
	OpGather4C
	OpGather4Po
	OpGather4PoC
	OpRcp
	OpF32tof16
	OpF16tof32
	OpUaddc
	OpUsubb
	OpCountbits
	OpFirstbitHi
	OpFirstbitLo
	OpFirstbitShi
	OpUbfe
	OpIbfe
	OpBfi
	OpBfrev
	OpSwapc
	OpDclStream
	OpDclFunctionBody
	OpDclFunctionTable
	OpDclInterface
	OpDclInputControlPointCount
	OpDclOutputControlPointCount
	OpDclTessellatorDomain
	OpDclTessellatorPartitioning
	OpDclTessellatorOutputPrimitive
	OpDclHsMaxTessfactor
	OpDclHsForkPhaseInstanceCount
	OpDclHsJoinPhaseInstanceCount
	OpDclThreadGroup
	OpDclUavTyped
	OpDclUavRaw
	OpDclUavStructured
	OpDclTgsmRaw
	OpDclTgsmStructured
	OpDclResourceRaw
	OpDclResourceStructured
	OpLdUavTyped
	OpStoreUavTyped
	OpLdRaw
	OpStoreRaw
	OpLdStructured
	OpStoreStructured
	OpAtomicAnd
	OpAtomicOr
	OpAtomicXor
	OpAtomicCmpStore
	OpAtomicIadd
	OpAtomicImax
	OpAtomicImin
	OpAtomicUmax
	OpAtomicUmin
	OpImmAtomicAlloc
	OpImmAtomicConsume
	OpImmAtomicIadd
	OpImmAtomicAnd
	OpImmAtomicOr
	OpImmAtomicXor
	OpImmAtomicExch
	OpImmAtomicCmpExch
	OpImmAtomicImax
	OpImmAtomicImin
	OpImmAtomicUmax
	OpImmAtomicUmin
	OpSync
	OpDadd
	OpDmax
	OpDmin
	OpDmul
	OpDeq
	OpDge
	OpDlt
	OpDne
	OpDmov
	OpDmovc
	OpDtof
	OpFtod
	OpEvalSnapped
	OpEvalSampleIndex
	OpEvalCentroid
	OpDclGsInstanceCount

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpAdd:                           "add",
	OpAnd:                           "and",
	OpBreak:                         "break",
	OpBreakc:                        "breakc",
	OpCall:                          "call",
	OpCallc:                         "callc",
	OpCase:                          "case",
	OpContinue:                      "continue",
	OpContinuec:                     "continuec",
	OpCut:                           "cut",
	OpDefault:                       "default",
	OpDerivRtx:                      "deriv_rtx",
	OpDerivRty:                      "deriv_rty",
	OpDiscard:                       "discard",
	OpDiv:                           "div",
	OpDp2:                           "dp2",
	OpDp3:                           "dp3",
	OpDp4:                           "dp4",
	OpElse:                          "else",
	OpEmit:                          "emit",
	OpEmitthencut:                   "emitthencut",
	OpEndif:                         "endif",
	OpEndloop:                       "endloop",
	OpEndswitch:                     "endswitch",
	OpEq:                            "eq",
	OpExp:                           "exp",
	OpFrc:                           "frc",
	OpFtoi:                          "ftoi",
	OpFtou:                          "ftou",
	OpGe:                            "ge",
	OpIadd:                          "iadd",
	OpIf:                            "if",
	OpIeq:                           "ieq",
	OpIge:                           "ige",
	OpIlt:                           "ilt",
	OpImad:                          "imad",
	OpImax:                          "imax",
	OpImin:                          "imin",
	OpImul:                          "imul",
	OpIne:                           "ine",
	OpIneg:                          "ineg",
	OpIshl:                          "ishl",
	OpIshr:                          "ishr",
	OpItof:                          "itof",
	OpLabel:                         "label",
	OpLd:                            "ld",
	OpLdMs:                          "ld_ms",
	OpLog:                           "log",
	OpLoop:                          "loop",
	OpLt:                            "lt",
	OpMad:                           "mad",
	OpMin:                           "min",
	OpMax:                           "max",
	OpCustomdata:                    "customdata",
	OpMov:                           "mov",
	OpMovc:                          "movc",
	OpMul:                           "mul",
	OpNe:                            "ne",
	OpNop:                           "nop",
	OpNot:                           "not",
	OpOr:                            "or",
	OpResinfo:                       "resinfo",
	OpRet:                           "ret",
	OpRetc:                          "retc",
	OpRoundNe:                       "round_ne",
	OpRoundNi:                       "round_ni",
	OpRoundPi:                       "round_pi",
	OpRoundZ:                        "round_z",
	OpRsq:                           "rsq",
	OpSample:                        "sample",
	OpSampleC:                       "sample_c",
	OpSampleCLz:                     "sample_c_lz",
	OpSampleL:                       "sample_l",
	OpSampleD:                       "sample_d",
	OpSampleB:                       "sample_b",
	OpSqrt:                          "sqrt",
	OpSwitch:                        "switch",
	OpSincos:                        "sincos",
	OpUdiv:                          "udiv",
	OpUlt:                           "ult",
	OpUge:                           "uge",
	OpUmul:                          "umul",
	OpUmad:                          "umad",
	OpUmax:                          "umax",
	OpUmin:                          "umin",
	OpUshr:                          "ushr",
	OpUtof:                          "utof",
	OpXor:                           "xor",
	OpDclResource:                   "dcl_resource",
	OpDclConstantbuffer:             "dcl_constantbuffer",
	OpDclSampler:                    "dcl_sampler",
	OpDclIndexrange:                 "dcl_indexrange",
	OpDclOutputtopology:             "dcl_outputtopology",
	OpDclInputprimitive:             "dcl_inputprimitive",
	OpDclMaxout:                     "dcl_maxout",
	OpDclInput:                      "dcl_input",
	OpDclInputSgv:                   "dcl_input_sgv",
	OpDclInputSiv:                   "dcl_input_siv",
	OpDclInputPs:                    "dcl_input_ps",
	OpDclInputPsSgv:                 "dcl_input_ps_sgv",
	OpDclInputPsSiv:                 "dcl_input_ps_siv",
	OpDclOutput:                     "dcl_output",
	OpDclOutputSgv:                  "dcl_output_sgv",
	OpDclOutputSiv:                  "dcl_output_siv",
	OpDclTemps:                      "dcl_temps",
	OpDclIndexabletemp:              "dcl_indexabletemp",
	OpDclGlobalflags:                "dcl_globalflags",
	OpReserved0:                     "reserved0",
	OpLod:                           "lod",
	OpGather4:                       "gather4",
	OpSamplePos:                     "sample_pos",
	OpSampleInfo:                    "sample_info",
	OpReserved1:                     "reserved1",
	OpHsDecls:                       "hs_decls",
	OpHsControlPointPhase:           "hs_control_point_phase",
	OpHsForkPhase:                   "hs_fork_phase",
	OpHsJoinPhase:                   "hs_join_phase",
	OpEmitStream:                    "emit_stream",
	OpCutStream:                     "cut_stream",
	OpEmitthencutStream:             "emitthencut_stream",
	OpFcall:                         "fcall",
	OpBufinfo:                       "bufinfo",
	OpDerivRtxCoarse:                "deriv_rtx_coarse",
	OpDerivRtxFine:                  "deriv_rtx_fine",
	OpDerivRtyCoarse:                "deriv_rty_coarse",
	OpDerivRtyFine:                  "deriv_rty_fine",
	OpGather4C:                      "gather4_c",
	OpGather4Po:                     "gather4_po",
	OpGather4PoC:                    "gather4_po_c",
	OpRcp:                           "rcp",
	OpF32tof16:                      "f32tof16",
	OpF16tof32:                      "f16tof32",
	OpUaddc:                         "uaddc",
	OpUsubb:                         "usubb",
	OpCountbits:                     "countbits",
	OpFirstbitHi:                    "firstbit_hi",
	OpFirstbitLo:                    "firstbit_lo",
	OpFirstbitShi:                   "firstbit_shi",
	OpUbfe:                          "ubfe",
	OpIbfe:                          "ibfe",
	OpBfi:                           "bfi",
	OpBfrev:                         "bfrev",
	OpSwapc:                         "swapc",
	OpDclStream:                     "dcl_stream",
	OpDclFunctionBody:               "dcl_function_body",
	OpDclFunctionTable:              "dcl_function_table",
	OpDclInterface:                  "dcl_interface",
	OpDclInputControlPointCount:     "dcl_input_control_point_count",
	OpDclOutputControlPointCount:    "dcl_output_control_point_count",
	OpDclTessellatorDomain:          "dcl_tessellator_domain",
	OpDclTessellatorPartitioning:    "dcl_tessellator_partitioning",
	OpDclTessellatorOutputPrimitive: "dcl_tessellator_output_primitive",
	OpDclHsMaxTessfactor:            "dcl_hs_max_tessfactor",
	OpDclHsForkPhaseInstanceCount:   "dcl_hs_fork_phase_instance_count",
	OpDclHsJoinPhaseInstanceCount:   "dcl_hs_join_phase_instance_count",
	OpDclThreadGroup:                "dcl_thread_group",
	OpDclUavTyped:                   "dcl_uav_typed",
	OpDclUavRaw:                     "dcl_uav_raw",
	OpDclUavStructured:              "dcl_uav_structured",
	OpDclTgsmRaw:                    "dcl_tgsm_raw",
	OpDclTgsmStructured:             "dcl_tgsm_structured",
	OpDclResourceRaw:                "dcl_resource_raw",
	OpDclResourceStructured:         "dcl_resource_structured",
	OpLdUavTyped:                    "ld_uav_typed",
	OpStoreUavTyped:                 "store_uav_typed",
	OpLdRaw:                         "ld_raw",
	OpStoreRaw:                      "store_raw",
	OpLdStructured:                  "ld_structured",
	OpStoreStructured:               "store_structured",
	OpAtomicAnd:                     "atomic_and",
	OpAtomicOr:                      "atomic_or",
	OpAtomicXor:                     "atomic_xor",
	OpAtomicCmpStore:                "atomic_cmp_store",
	OpAtomicIadd:                    "atomic_iadd",
	OpAtomicImax:                    "atomic_imax",
	OpAtomicImin:                    "atomic_imin",
	OpAtomicUmax:                    "atomic_umax",
	OpAtomicUmin:                    "atomic_umin",
	OpImmAtomicAlloc:                "imm_atomic_alloc",
	OpImmAtomicConsume:              "imm_atomic_consume",
	OpImmAtomicIadd:                 "imm_atomic_iadd",
	OpImmAtomicAnd:                  "imm_atomic_and",
	OpImmAtomicOr:                   "imm_atomic_or",
	OpImmAtomicXor:                  "imm_atomic_xor",
	OpImmAtomicExch:                 "imm_atomic_exch",
	OpImmAtomicCmpExch:              "imm_atomic_cmp_exch",
	OpImmAtomicImax:                 "imm_atomic_imax",
	OpImmAtomicImin:                 "imm_atomic_imin",
	OpImmAtomicUmax:                 "imm_atomic_umax",
	OpImmAtomicUmin:                 "imm_atomic_umin",
	OpSync:                          "sync",
	OpDadd:                          "dadd",
	OpDmax:                          "dmax",
	OpDmin:                          "dmin",
	OpDmul:                          "dmul",
	OpDeq:                           "deq",
	OpDge:                           "dge",
	OpDlt:                           "dlt",
	OpDne:                           "dne",
	OpDmov:                          "dmov",
	OpDmovc:                         "dmovc",
	OpDtof:                          "dtof",
	OpFtod:                          "ftod",
	OpEvalSnapped:                   "eval_snapped",
	OpEvalSampleIndex:               "eval_sample_index",
	OpEvalCentroid:                  "eval_centroid",
	OpDclGsInstanceCount:            "dcl_gs_instance_count",
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, opcodeCount)
	for op, name := range opcodeNames {
		m[name] = Opcode(op)
	}
	return m
}()

// String returns the disassembler mnemonic.
func (op Opcode) String() string {
	if op < opcodeCount {
		return opcodeNames[op]
	}
	return fmt.Sprintf("opcode_%d", uint16(op))
}

// ParseOpcode looks up an opcode by mnemonic.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// IsDeclaration reports whether op is a dcl_* opcode. Declaration operands
// are kept as raw words.
func (op Opcode) IsDeclaration() bool {
	switch {
	case op >= OpDclResource && op <= OpDclGlobalflags:
		return true
	case op >= OpDclStream && op <= OpDclResourceStructured:
		return true
	case op == OpDclGsInstanceCount:
		return true
	}
	return false
}

// hasRawOperands reports whether op's operands are not operand tokens.
func (op Opcode) hasRawOperands() bool {
	switch op {
	case OpCustomdata, OpFcall, OpHsDecls, OpHsControlPointPhase, OpHsForkPhase, OpHsJoinPhase:
		return true
	}
	return op.IsDeclaration()
}

// hasTest reports whether op reads the zero/non-zero test bit.
func (op Opcode) hasTest() bool {
	switch op {
	case OpIf, OpBreakc, OpContinuec, OpRetc, OpCallc, OpDiscard:
		return true
	}
	return false
}
