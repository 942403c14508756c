package spirv

// OpCode is a SPIR-V core opcode, or a GLSL.std.450 extended instruction
// lifted to GLSLStd450Base + its instruction number.
type OpCode uint16

// Core opcodes.
const (
	OpNop                            OpCode = 0
	OpUndef                          OpCode = 1
	OpSourceContinued                OpCode = 2
	OpSource                         OpCode = 3
	OpSourceExtension                OpCode = 4
	OpName                           OpCode = 5
	OpMemberName                     OpCode = 6
	OpString                         OpCode = 7
	OpLine                           OpCode = 8
	OpExtension                      OpCode = 10
	OpExtInstImport                  OpCode = 11
	OpExtInst                        OpCode = 12
	OpMemoryModel                    OpCode = 14
	OpEntryPoint                     OpCode = 15
	OpExecutionMode                  OpCode = 16
	OpCapability                     OpCode = 17
	OpTypeVoid                       OpCode = 19
	OpTypeBool                       OpCode = 20
	OpTypeInt                        OpCode = 21
	OpTypeFloat                      OpCode = 22
	OpTypeVector                     OpCode = 23
	OpTypeMatrix                     OpCode = 24
	OpTypeImage                      OpCode = 25
	OpTypeSampler                    OpCode = 26
	OpTypeSampledImage               OpCode = 27
	OpTypeArray                      OpCode = 28
	OpTypeRuntimeArray               OpCode = 29
	OpTypeStruct                     OpCode = 30
	OpTypeOpaque                     OpCode = 31
	OpTypePointer                    OpCode = 32
	OpTypeFunction                   OpCode = 33
	OpConstantTrue                   OpCode = 41
	OpConstantFalse                  OpCode = 42
	OpConstant                       OpCode = 43
	OpConstantComposite              OpCode = 44
	OpConstantSampler                OpCode = 45
	OpConstantNull                   OpCode = 46
	OpSpecConstantTrue               OpCode = 48
	OpSpecConstantFalse              OpCode = 49
	OpSpecConstant                   OpCode = 50
	OpSpecConstantComposite          OpCode = 51
	OpSpecConstantOp                 OpCode = 52
	OpFunction                       OpCode = 54
	OpFunctionParameter              OpCode = 55
	OpFunctionEnd                    OpCode = 56
	OpFunctionCall                   OpCode = 57
	OpVariable                       OpCode = 59
	OpImageTexelPointer              OpCode = 60
	OpLoad                           OpCode = 61
	OpStore                          OpCode = 62
	OpCopyMemory                     OpCode = 63
	OpAccessChain                    OpCode = 65
	OpInBoundsAccessChain            OpCode = 66
	OpArrayLength                    OpCode = 68
	OpDecorate                       OpCode = 71
	OpMemberDecorate                 OpCode = 72
	OpDecorationGroup                OpCode = 73
	OpGroupDecorate                  OpCode = 74
	OpGroupMemberDecorate            OpCode = 75
	OpVectorExtractDynamic           OpCode = 77
	OpVectorInsertDynamic            OpCode = 78
	OpVectorShuffle                  OpCode = 79
	OpCompositeConstruct             OpCode = 80
	OpCompositeExtract               OpCode = 81
	OpCompositeInsert                OpCode = 82
	OpCopyObject                     OpCode = 83
	OpTranspose                      OpCode = 84
	OpSampledImage                   OpCode = 86
	OpImageSampleImplicitLod         OpCode = 87
	OpImageSampleExplicitLod         OpCode = 88
	OpImageSampleDrefImplicitLod     OpCode = 89
	OpImageSampleDrefExplicitLod     OpCode = 90
	OpImageSampleProjImplicitLod     OpCode = 91
	OpImageSampleProjExplicitLod     OpCode = 92
	OpImageSampleProjDrefImplicitLod OpCode = 93
	OpImageSampleProjDrefExplicitLod OpCode = 94
	OpImageFetch                     OpCode = 95
	OpImageGather                    OpCode = 96
	OpImageDrefGather                OpCode = 97
	OpImageRead                      OpCode = 98
	OpImageWrite                     OpCode = 99
	OpImage                          OpCode = 100
	OpImageQuerySizeLod              OpCode = 103
	OpImageQuerySize                 OpCode = 104
	OpImageQueryLod                  OpCode = 105
	OpImageQueryLevels               OpCode = 106
	OpImageQuerySamples              OpCode = 107
	OpConvertFToU                    OpCode = 109
	OpConvertFToS                    OpCode = 110
	OpConvertSToF                    OpCode = 111
	OpConvertUToF                    OpCode = 112
	OpUConvert                       OpCode = 113
	OpSConvert                       OpCode = 114
	OpFConvert                       OpCode = 115
	OpQuantizeToF16                  OpCode = 116
	OpBitcast                        OpCode = 124
	OpSNegate                        OpCode = 126
	OpFNegate                        OpCode = 127
	OpIAdd                           OpCode = 128
	OpFAdd                           OpCode = 129
	OpISub                           OpCode = 130
	OpFSub                           OpCode = 131
	OpIMul                           OpCode = 132
	OpFMul                           OpCode = 133
	OpUDiv                           OpCode = 134
	OpSDiv                           OpCode = 135
	OpFDiv                           OpCode = 136
	OpUMod                           OpCode = 137
	OpSRem                           OpCode = 138
	OpSMod                           OpCode = 139
	OpFRem                           OpCode = 140
	OpFMod                           OpCode = 141
	OpVectorTimesScalar              OpCode = 142
	OpMatrixTimesScalar              OpCode = 143
	OpVectorTimesMatrix              OpCode = 144
	OpMatrixTimesVector              OpCode = 145
	OpMatrixTimesMatrix              OpCode = 146
	OpOuterProduct                   OpCode = 147
	OpDot                            OpCode = 148
	OpIAddCarry                      OpCode = 149
	OpISubBorrow                     OpCode = 150
	OpUMulExtended                   OpCode = 151
	OpSMulExtended                   OpCode = 152
	OpAny                            OpCode = 154
	OpAll                            OpCode = 155
	OpIsNan                          OpCode = 156
	OpIsInf                          OpCode = 157
	OpIsFinite                       OpCode = 158
	OpIsNormal                       OpCode = 159
	OpSignBitSet                     OpCode = 160
	OpLogicalEqual                   OpCode = 164
	OpLogicalNotEqual                OpCode = 165
	OpLogicalOr                      OpCode = 166
	OpLogicalAnd                     OpCode = 167
	OpLogicalNot                     OpCode = 168
	OpSelect                         OpCode = 169
	OpIEqual                         OpCode = 170
	OpINotEqual                      OpCode = 171
	OpUGreaterThan                   OpCode = 172
	OpSGreaterThan                   OpCode = 173
	OpUGreaterThanEqual              OpCode = 174
	OpSGreaterThanEqual              OpCode = 175
	OpULessThan                      OpCode = 176
	OpSLessThan                      OpCode = 177
	OpULessThanEqual                 OpCode = 178
	OpSLessThanEqual                 OpCode = 179
	OpFOrdEqual                      OpCode = 180
	OpFUnordEqual                    OpCode = 181
	OpFOrdNotEqual                   OpCode = 182
	OpFUnordNotEqual                 OpCode = 183
	OpFOrdLessThan                   OpCode = 184
	OpFUnordLessThan                 OpCode = 185
	OpFOrdGreaterThan                OpCode = 186
	OpFUnordGreaterThan              OpCode = 187
	OpFOrdLessThanEqual              OpCode = 188
	OpFUnordLessThanEqual            OpCode = 189
	OpFOrdGreaterThanEqual           OpCode = 190
	OpFUnordGreaterThanEqual         OpCode = 191
	OpShiftRightLogical              OpCode = 194
	OpShiftRightArithmetic           OpCode = 195
	OpShiftLeftLogical               OpCode = 196
	OpBitwiseOr                      OpCode = 197
	OpBitwiseXor                     OpCode = 198
	OpBitwiseAnd                     OpCode = 199
	OpNot                            OpCode = 200
	OpBitFieldInsert                 OpCode = 201
	OpBitFieldSExtract               OpCode = 202
	OpBitFieldUExtract               OpCode = 203
	OpBitReverse                     OpCode = 204
	OpBitCount                       OpCode = 205
	OpDPdx                           OpCode = 207
	OpDPdy                           OpCode = 208
	OpFwidth                         OpCode = 209
	OpDPdxFine                       OpCode = 210
	OpDPdyFine                       OpCode = 211
	OpFwidthFine                     OpCode = 212
	OpDPdxCoarse                     OpCode = 213
	OpDPdyCoarse                     OpCode = 214
	OpFwidthCoarse                   OpCode = 215
	OpControlBarrier                 OpCode = 224
	OpMemoryBarrier                  OpCode = 225
	OpPhi                            OpCode = 245
	OpLoopMerge                      OpCode = 246
	OpSelectionMerge                 OpCode = 247
	OpLabel                          OpCode = 248
	OpBranch                         OpCode = 249
	OpBranchConditional              OpCode = 250
	OpSwitch                         OpCode = 251
	OpKill                           OpCode = 252
	OpReturn                         OpCode = 253
	OpReturnValue                    OpCode = 254
	OpUnreachable                    OpCode = 255
	OpNoLine                         OpCode = 317
	OpModuleProcessed                OpCode = 330
	OpExecutionModeID                OpCode = 331
	OpDecorateID                     OpCode = 332
	OpTerminateInvocation            OpCode = 4416
	OpDecorateString                 OpCode = 5632
	OpMemberDecorateString           OpCode = 5633
)

// GLSLStd450Base is the first lifted GLSL.std.450 opcode.
const GLSLStd450Base OpCode = 0xF000

// GLSL.std.450 extended instructions.
const (
	GLSLRound       = GLSLStd450Base + 1
	GLSLRoundEven   = GLSLStd450Base + 2
	GLSLTrunc       = GLSLStd450Base + 3
	GLSLFAbs        = GLSLStd450Base + 4
	GLSLSAbs        = GLSLStd450Base + 5
	GLSLFSign       = GLSLStd450Base + 6
	GLSLSSign       = GLSLStd450Base + 7
	GLSLFloor       = GLSLStd450Base + 8
	GLSLCeil        = GLSLStd450Base + 9
	GLSLFract       = GLSLStd450Base + 10
	GLSLRadians     = GLSLStd450Base + 11
	GLSLDegrees     = GLSLStd450Base + 12
	GLSLSin         = GLSLStd450Base + 13
	GLSLCos         = GLSLStd450Base + 14
	GLSLTan         = GLSLStd450Base + 15
	GLSLAsin        = GLSLStd450Base + 16
	GLSLAcos        = GLSLStd450Base + 17
	GLSLAtan        = GLSLStd450Base + 18
	GLSLAtan2       = GLSLStd450Base + 25
	GLSLPow         = GLSLStd450Base + 26
	GLSLExp         = GLSLStd450Base + 27
	GLSLLog         = GLSLStd450Base + 28
	GLSLExp2        = GLSLStd450Base + 29
	GLSLLog2        = GLSLStd450Base + 30
	GLSLSqrt        = GLSLStd450Base + 31
	GLSLInverseSqrt = GLSLStd450Base + 32
	GLSLFMin        = GLSLStd450Base + 37
	GLSLUMin        = GLSLStd450Base + 38
	GLSLSMin        = GLSLStd450Base + 39
	GLSLFMax        = GLSLStd450Base + 40
	GLSLUMax        = GLSLStd450Base + 41
	GLSLSMax        = GLSLStd450Base + 42
	GLSLFClamp      = GLSLStd450Base + 43
	GLSLUClamp      = GLSLStd450Base + 44
	GLSLSClamp      = GLSLStd450Base + 45
	GLSLFMix        = GLSLStd450Base + 46
	GLSLStep        = GLSLStd450Base + 48
	GLSLSmoothStep  = GLSLStd450Base + 49
	GLSLFma         = GLSLStd450Base + 50
	GLSLLength      = GLSLStd450Base + 66
	GLSLDistance    = GLSLStd450Base + 67
	GLSLCross       = GLSLStd450Base + 68
	GLSLNormalize   = GLSLStd450Base + 69
	GLSLReflect     = GLSLStd450Base + 71
)

var opcodeNames = map[OpCode]string{
	OpNop:                            "OpNop",
	OpUndef:                          "OpUndef",
	OpSourceContinued:                "OpSourceContinued",
	OpSource:                         "OpSource",
	OpSourceExtension:                "OpSourceExtension",
	OpName:                           "OpName",
	OpMemberName:                     "OpMemberName",
	OpString:                         "OpString",
	OpLine:                           "OpLine",
	OpExtension:                      "OpExtension",
	OpExtInstImport:                  "OpExtInstImport",
	OpExtInst:                        "OpExtInst",
	OpMemoryModel:                    "OpMemoryModel",
	OpEntryPoint:                     "OpEntryPoint",
	OpExecutionMode:                  "OpExecutionMode",
	OpCapability:                     "OpCapability",
	OpTypeVoid:                       "OpTypeVoid",
	OpTypeBool:                       "OpTypeBool",
	OpTypeInt:                        "OpTypeInt",
	OpTypeFloat:                      "OpTypeFloat",
	OpTypeVector:                     "OpTypeVector",
	OpTypeMatrix:                     "OpTypeMatrix",
	OpTypeImage:                      "OpTypeImage",
	OpTypeSampler:                    "OpTypeSampler",
	OpTypeSampledImage:               "OpTypeSampledImage",
	OpTypeArray:                      "OpTypeArray",
	OpTypeRuntimeArray:               "OpTypeRuntimeArray",
	OpTypeStruct:                     "OpTypeStruct",
	OpTypeOpaque:                     "OpTypeOpaque",
	OpTypePointer:                    "OpTypePointer",
	OpTypeFunction:                   "OpTypeFunction",
	OpConstantTrue:                   "OpConstantTrue",
	OpConstantFalse:                  "OpConstantFalse",
	OpConstant:                       "OpConstant",
	OpConstantComposite:              "OpConstantComposite",
	OpConstantSampler:                "OpConstantSampler",
	OpConstantNull:                   "OpConstantNull",
	OpSpecConstantTrue:               "OpSpecConstantTrue",
	OpSpecConstantFalse:              "OpSpecConstantFalse",
	OpSpecConstant:                   "OpSpecConstant",
	OpSpecConstantComposite:          "OpSpecConstantComposite",
	OpSpecConstantOp:                 "OpSpecConstantOp",
	OpFunction:                       "OpFunction",
	OpFunctionParameter:              "OpFunctionParameter",
	OpFunctionEnd:                    "OpFunctionEnd",
	OpFunctionCall:                   "OpFunctionCall",
	OpVariable:                       "OpVariable",
	OpImageTexelPointer:              "OpImageTexelPointer",
	OpLoad:                           "OpLoad",
	OpStore:                          "OpStore",
	OpCopyMemory:                     "OpCopyMemory",
	OpAccessChain:                    "OpAccessChain",
	OpInBoundsAccessChain:            "OpInBoundsAccessChain",
	OpArrayLength:                    "OpArrayLength",
	OpDecorate:                       "OpDecorate",
	OpMemberDecorate:                 "OpMemberDecorate",
	OpDecorationGroup:                "OpDecorationGroup",
	OpGroupDecorate:                  "OpGroupDecorate",
	OpGroupMemberDecorate:            "OpGroupMemberDecorate",
	OpVectorExtractDynamic:           "OpVectorExtractDynamic",
	OpVectorInsertDynamic:            "OpVectorInsertDynamic",
	OpVectorShuffle:                  "OpVectorShuffle",
	OpCompositeConstruct:             "OpCompositeConstruct",
	OpCompositeExtract:               "OpCompositeExtract",
	OpCompositeInsert:                "OpCompositeInsert",
	OpCopyObject:                     "OpCopyObject",
	OpTranspose:                      "OpTranspose",
	OpSampledImage:                   "OpSampledImage",
	OpImageSampleImplicitLod:         "OpImageSampleImplicitLod",
	OpImageSampleExplicitLod:         "OpImageSampleExplicitLod",
	OpImageSampleDrefImplicitLod:     "OpImageSampleDrefImplicitLod",
	OpImageSampleDrefExplicitLod:     "OpImageSampleDrefExplicitLod",
	OpImageSampleProjImplicitLod:     "OpImageSampleProjImplicitLod",
	OpImageSampleProjExplicitLod:     "OpImageSampleProjExplicitLod",
	OpImageSampleProjDrefImplicitLod: "OpImageSampleProjDrefImplicitLod",
	OpImageSampleProjDrefExplicitLod: "OpImageSampleProjDrefExplicitLod",
	OpImageFetch:                     "OpImageFetch",
	OpImageGather:                    "OpImageGather",
	OpImageDrefGather:                "OpImageDrefGather",
	OpImageRead:                      "OpImageRead",
	OpImageWrite:                     "OpImageWrite",
	OpImage:                          "OpImage",
	OpImageQuerySizeLod:              "OpImageQuerySizeLod",
	OpImageQuerySize:                 "OpImageQuerySize",
	OpImageQueryLod:                  "OpImageQueryLod",
	OpImageQueryLevels:               "OpImageQueryLevels",
	OpImageQuerySamples:              "OpImageQuerySamples",
	OpConvertFToU:                    "OpConvertFToU",
	OpConvertFToS:                    "OpConvertFToS",
	OpConvertSToF:                    "OpConvertSToF",
	OpConvertUToF:                    "OpConvertUToF",
	OpUConvert:                       "OpUConvert",
	OpSConvert:                       "OpSConvert",
	OpFConvert:                       "OpFConvert",
	OpQuantizeToF16:                  "OpQuantizeToF16",
	OpBitcast:                        "OpBitcast",
	OpSNegate:                        "OpSNegate",
	OpFNegate:                        "OpFNegate",
	OpIAdd:                           "OpIAdd",
	OpFAdd:                           "OpFAdd",
	OpISub:                           "OpISub",
	OpFSub:                           "OpFSub",
	OpIMul:                           "OpIMul",
	OpFMul:                           "OpFMul",
	OpUDiv:                           "OpUDiv",
	OpSDiv:                           "OpSDiv",
	OpFDiv:                           "OpFDiv",
	OpUMod:                           "OpUMod",
	OpSRem:                           "OpSRem",
	OpSMod:                           "OpSMod",
	OpFRem:                           "OpFRem",
	OpFMod:                           "OpFMod",
	OpVectorTimesScalar:              "OpVectorTimesScalar",
	OpMatrixTimesScalar:              "OpMatrixTimesScalar",
	OpVectorTimesMatrix:              "OpVectorTimesMatrix",
	OpMatrixTimesVector:              "OpMatrixTimesVector",
	OpMatrixTimesMatrix:              "OpMatrixTimesMatrix",
	OpOuterProduct:                   "OpOuterProduct",
	OpDot:                            "OpDot",
	OpIAddCarry:                      "OpIAddCarry",
	OpISubBorrow:                     "OpISubBorrow",
	OpUMulExtended:                   "OpUMulExtended",
	OpSMulExtended:                   "OpSMulExtended",
	OpAny:                            "OpAny",
	OpAll:                            "OpAll",
	OpIsNan:                          "OpIsNan",
	OpIsInf:                          "OpIsInf",
	OpIsFinite:                       "OpIsFinite",
	OpIsNormal:                       "OpIsNormal",
	OpSignBitSet:                     "OpSignBitSet",
	OpLogicalEqual:                   "OpLogicalEqual",
	OpLogicalNotEqual:                "OpLogicalNotEqual",
	OpLogicalOr:                      "OpLogicalOr",
	OpLogicalAnd:                     "OpLogicalAnd",
	OpLogicalNot:                     "OpLogicalNot",
	OpSelect:                         "OpSelect",
	OpIEqual:                         "OpIEqual",
	OpINotEqual:                      "OpINotEqual",
	OpUGreaterThan:                   "OpUGreaterThan",
	OpSGreaterThan:                   "OpSGreaterThan",
	OpUGreaterThanEqual:              "OpUGreaterThanEqual",
	OpSGreaterThanEqual:              "OpSGreaterThanEqual",
	OpULessThan:                      "OpULessThan",
	OpSLessThan:                      "OpSLessThan",
	OpULessThanEqual:                 "OpULessThanEqual",
	OpSLessThanEqual:                 "OpSLessThanEqual",
	OpFOrdEqual:                      "OpFOrdEqual",
	OpFUnordEqual:                    "OpFUnordEqual",
	OpFOrdNotEqual:                   "OpFOrdNotEqual",
	OpFUnordNotEqual:                 "OpFUnordNotEqual",
	OpFOrdLessThan:                   "OpFOrdLessThan",
	OpFUnordLessThan:                 "OpFUnordLessThan",
	OpFOrdGreaterThan:                "OpFOrdGreaterThan",
	OpFUnordGreaterThan:              "OpFUnordGreaterThan",
	OpFOrdLessThanEqual:              "OpFOrdLessThanEqual",
	OpFUnordLessThanEqual:            "OpFUnordLessThanEqual",
	OpFOrdGreaterThanEqual:           "OpFOrdGreaterThanEqual",
	OpFUnordGreaterThanEqual:         "OpFUnordGreaterThanEqual",
	OpShiftRightLogical:              "OpShiftRightLogical",
	OpShiftRightArithmetic:           "OpShiftRightArithmetic",
	OpShiftLeftLogical:               "OpShiftLeftLogical",
	OpBitwiseOr:                      "OpBitwiseOr",
	OpBitwiseXor:                     "OpBitwiseXor",
	OpBitwiseAnd:                     "OpBitwiseAnd",
	OpNot:                            "OpNot",
	OpBitFieldInsert:                 "OpBitFieldInsert",
	OpBitFieldSExtract:               "OpBitFieldSExtract",
	OpBitFieldUExtract:               "OpBitFieldUExtract",
	OpBitReverse:                     "OpBitReverse",
	OpBitCount:                       "OpBitCount",
	OpDPdx:                           "OpDPdx",
	OpDPdy:                           "OpDPdy",
	OpFwidth:                         "OpFwidth",
	OpDPdxFine:                       "OpDPdxFine",
	OpDPdyFine:                       "OpDPdyFine",
	OpFwidthFine:                     "OpFwidthFine",
	OpDPdxCoarse:                     "OpDPdxCoarse",
	OpDPdyCoarse:                     "OpDPdyCoarse",
	OpFwidthCoarse:                   "OpFwidthCoarse",
	OpControlBarrier:                 "OpControlBarrier",
	OpMemoryBarrier:                  "OpMemoryBarrier",
	OpPhi:                            "OpPhi",
	OpLoopMerge:                      "OpLoopMerge",
	OpSelectionMerge:                 "OpSelectionMerge",
	OpLabel:                          "OpLabel",
	OpBranch:                         "OpBranch",
	OpBranchConditional:              "OpBranchConditional",
	OpSwitch:                         "OpSwitch",
	OpKill:                           "OpKill",
	OpReturn:                         "OpReturn",
	OpReturnValue:                    "OpReturnValue",
	OpUnreachable:                    "OpUnreachable",
	OpNoLine:                         "OpNoLine",
	OpModuleProcessed:                "OpModuleProcessed",
	OpExecutionModeID:                "OpExecutionModeId",
	OpDecorateID:                     "OpDecorateId",
	OpTerminateInvocation:            "OpTerminateInvocation",
	OpDecorateString:                 "OpDecorateString",
	OpMemberDecorateString:           "OpMemberDecorateString",
	GLSLRound:                        "GLSL.std.450.Round",
	GLSLRoundEven:                    "GLSL.std.450.RoundEven",
	GLSLTrunc:                        "GLSL.std.450.Trunc",
	GLSLFAbs:                         "GLSL.std.450.FAbs",
	GLSLSAbs:                         "GLSL.std.450.SAbs",
	GLSLFSign:                        "GLSL.std.450.FSign",
	GLSLSSign:                        "GLSL.std.450.SSign",
	GLSLFloor:                        "GLSL.std.450.Floor",
	GLSLCeil:                         "GLSL.std.450.Ceil",
	GLSLFract:                        "GLSL.std.450.Fract",
	GLSLRadians:                      "GLSL.std.450.Radians",
	GLSLDegrees:                      "GLSL.std.450.Degrees",
	GLSLSin:                          "GLSL.std.450.Sin",
	GLSLCos:                          "GLSL.std.450.Cos",
	GLSLTan:                          "GLSL.std.450.Tan",
	GLSLAsin:                         "GLSL.std.450.Asin",
	GLSLAcos:                         "GLSL.std.450.Acos",
	GLSLAtan:                         "GLSL.std.450.Atan",
	GLSLAtan2:                        "GLSL.std.450.Atan2",
	GLSLPow:                          "GLSL.std.450.Pow",
	GLSLExp:                          "GLSL.std.450.Exp",
	GLSLLog:                          "GLSL.std.450.Log",
	GLSLExp2:                         "GLSL.std.450.Exp2",
	GLSLLog2:                         "GLSL.std.450.Log2",
	GLSLSqrt:                         "GLSL.std.450.Sqrt",
	GLSLInverseSqrt:                  "GLSL.std.450.InverseSqrt",
	GLSLFMin:                         "GLSL.std.450.FMin",
	GLSLUMin:                         "GLSL.std.450.UMin",
	GLSLSMin:                         "GLSL.std.450.SMin",
	GLSLFMax:                         "GLSL.std.450.FMax",
	GLSLUMax:                         "GLSL.std.450.UMax",
	GLSLSMax:                         "GLSL.std.450.SMax",
	GLSLFClamp:                       "GLSL.std.450.FClamp",
	GLSLUClamp:                       "GLSL.std.450.UClamp",
	GLSLSClamp:                       "GLSL.std.450.SClamp",
	GLSLFMix:                         "GLSL.std.450.FMix",
	GLSLStep:                         "GLSL.std.450.Step",
	GLSLSmoothStep:                   "GLSL.std.450.SmoothStep",
	GLSLFma:                          "GLSL.std.450.Fma",
	GLSLLength:                       "GLSL.std.450.Length",
	GLSLDistance:                     "GLSL.std.450.Distance",
	GLSLCross:                        "GLSL.std.450.Cross",
	GLSLNormalize:                    "GLSL.std.450.Normalize",
	GLSLReflect:                      "GLSL.std.450.Reflect",
}
