package m68kasm

// An Inst is a single decoded instruction.
type Inst struct {
	Size  int        // Width in bytes of the primary data movement: 0, 1, 2, 4, 8, 10 or 12.
	Op    Op         // Opcode mnemonic.
	Args  [2]Operand // Source and destination; nil marks an unused slot.
	Extra Extra      // Condition, bitfield, pack adjustment or float format; nil when absent.
}

// A DecodedInst is the result of a successful call to Decode.
type DecodedInst struct {
	BytesUsed uint32 // Length of the instruction in bytes, always even.
	Inst      Inst
}

// An Operand is a single instruction operand. The set of implementations
// is closed: Implied, Imm8, Imm16, Imm32, Abs16, Abs32, DataReg, AddrReg,
// FPReg, ARIndirect, ARPostInc, ARPreDec, ARDisp, PCDisp, Disp,
// DataRegPair, FPRegPair, RegList and ControlReg.
type Operand interface {
	isOperand()
}

// Implied is an operand fixed by the opcode, such as CCR, SR or USP.
type Implied struct{}

// Immediate operands.
type (
	Imm8  uint8
	Imm16 uint16
	Imm32 uint32
)

// Absolute addresses, (xxx).W and (xxx).L. Abs16 is sign-extended by the
// processor when used.
type (
	Abs16 int16
	Abs32 uint32
)

// A DataReg is one of D0-D7.
type DataReg uint8

// An AddrReg is one of A0-A7.
type AddrReg uint8

// An FPReg is one of FP0-FP7.
type FPReg uint8

const (
	D0 DataReg = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
)

const (
	A0 AddrReg = iota
	A1
	A2
	A3
	A4
	A5
	A6
	A7
)

const (
	FP0 FPReg = iota
	FP1
	FP2
	FP3
	FP4
	FP5
	FP6
	FP7
)

// ARIndirect is (An).
type ARIndirect struct{ Reg AddrReg }

// ARPostInc is (An)+.
type ARPostInc struct{ Reg AddrReg }

// ARPreDec is -(An).
type ARPreDec struct{ Reg AddrReg }

// ARDisp is an address register based memory reference with a 16-bit
// displacement or any of the extended (index, memory indirect) forms.
type ARDisp struct {
	Reg  AddrReg
	Disp Displacement
}

// PCDisp is a program counter relative memory reference. Offset is the
// byte offset from the start of the instruction at which the PC value is
// sampled, the position of the extension word carrying the displacement.
type PCDisp struct {
	Offset uint32
	Disp   Displacement
}

// Disp is a memory reference whose base register was suppressed in a full
// format extension word.
type Disp struct {
	Disp Displacement
}

// DataRegPair is a pair of data registers such as Dh:Dl or Dc:Du.
type DataRegPair struct {
	First, Second DataReg
}

// FPRegPair is a pair of floating point registers, FPc:FPs for FSINCOS.
type FPRegPair struct {
	First, Second FPReg
}

// A RegList is a register transfer mask. For MOVEM bit n is set when
// register n of D0-D7,A0-A7 is transferred. For FMOVEM of data registers
// bit n stands for FPn and for FPU control registers bit 2 is FPCR, bit 1
// FPSR and bit 0 FPIAR. The encoding order of the instruction stream has
// already been normalised.
type RegList uint16

// A ControlReg is the 12-bit control register selector used by MOVEC.
type ControlReg uint16

func (Implied) isOperand()     {}
func (Imm8) isOperand()        {}
func (Imm16) isOperand()       {}
func (Imm32) isOperand()       {}
func (Abs16) isOperand()       {}
func (Abs32) isOperand()       {}
func (DataReg) isOperand()     {}
func (AddrReg) isOperand()     {}
func (FPReg) isOperand()       {}
func (ARIndirect) isOperand()  {}
func (ARPostInc) isOperand()   {}
func (ARPreDec) isOperand()    {}
func (ARDisp) isOperand()      {}
func (PCDisp) isOperand()      {}
func (Disp) isOperand()        {}
func (DataRegPair) isOperand() {}
func (FPRegPair) isOperand()   {}
func (RegList) isOperand()     {}
func (ControlReg) isOperand()  {}

// A Displacement describes the address computation of an indexed or memory
// indirect operand. Both displacements are sign-extended to 32 bits.
type Displacement struct {
	Base        int32
	Outer       int32
	Indexer     Indexer // nil when no index register is used
	Indirection MemoryIndirection
}

// An Indexer is the scaled index register of an extended operand, either
// DataIndex or AddrIndex.
type Indexer interface {
	isIndexer()
}

// DataIndex indexes with a data register shifted left by Scale bits.
// Long is false when only the sign-extended low word is used.
type DataIndex struct {
	Reg   DataReg
	Scale uint8
	Long  bool
}

// AddrIndex indexes with an address register shifted left by Scale bits.
type AddrIndex struct {
	Reg   AddrReg
	Scale uint8
	Long  bool
}

func (DataIndex) isIndexer() {}
func (AddrIndex) isIndexer() {}

// MemoryIndirection selects the 68020 memory indirect addressing variant.
type MemoryIndirection uint8

const (
	NoIndirection       MemoryIndirection = iota
	Indirect                              // ([bd,An],od) with suppressed index
	IndirectPreIndexed                    // ([bd,An,Xn],od)
	IndirectPostIndexed                   // ([bd,An],Xn,od)
)

func (m MemoryIndirection) String() string {
	switch m {
	case NoIndirection:
		return "none"
	case Indirect:
		return "indirect"
	case IndirectPreIndexed:
		return "pre-indexed"
	case IndirectPostIndexed:
		return "post-indexed"
	}
	return "?"
}

// BitfieldData is a bitfield offset or width, either BitfieldStatic or
// BitfieldDynamic.
type BitfieldData interface {
	isBitfieldData()
}

// BitfieldStatic is an immediate offset or width. An encoded width of 0
// decodes as 32.
type BitfieldStatic uint8

// BitfieldDynamic takes the offset or width from a data register at run
// time.
type BitfieldDynamic DataReg

func (BitfieldStatic) isBitfieldData()  {}
func (BitfieldDynamic) isBitfieldData() {}

// An FPFormat is the data format of a floating point memory operand.
type FPFormat interface {
	isFPFormat()
	// Size is the byte size of an operand in this format.
	Size() int
}

type (
	FPLong     struct{}
	FPSingle   struct{}
	FPExtended struct{}
	FPWord     struct{}
	FPDouble   struct{}
	FPByte     struct{}
)

// FPPackedStatic is packed decimal real with a static k-factor.
type FPPackedStatic struct{ K int8 }

// FPPackedDynamic is packed decimal real with the k-factor held in a data
// register.
type FPPackedDynamic struct{ K DataReg }

func (FPLong) isFPFormat()          {}
func (FPSingle) isFPFormat()        {}
func (FPExtended) isFPFormat()      {}
func (FPWord) isFPFormat()          {}
func (FPDouble) isFPFormat()        {}
func (FPByte) isFPFormat()          {}
func (FPPackedStatic) isFPFormat()  {}
func (FPPackedDynamic) isFPFormat() {}

func (FPLong) Size() int          { return 4 }
func (FPSingle) Size() int        { return 4 }
func (FPExtended) Size() int      { return 10 }
func (FPWord) Size() int          { return 2 }
func (FPDouble) Size() int        { return 8 }
func (FPByte) Size() int          { return 1 }
func (FPPackedStatic) Size() int  { return 12 }
func (FPPackedDynamic) Size() int { return 12 }

// Extra carries the one piece of instruction specific data that does not
// fit the operand slots: Bitfield, Condition, FPCondition, PackAdjust or
// FloatFormat.
type Extra interface {
	isExtra()
}

// Bitfield is the {offset:width} specifier of the BFxxx instructions.
type Bitfield struct {
	Offset BitfieldData
	Width  BitfieldData
}

// PackAdjust is the adjustment word of PACK and UNPK.
type PackAdjust uint16

// FloatFormat is the source or destination format of an FPU instruction
// with a memory or data register operand.
type FloatFormat struct {
	Format FPFormat
}

func (Bitfield) isExtra()    {}
func (Condition) isExtra()   {}
func (FPCondition) isExtra() {}
func (PackAdjust) isExtra()  {}
func (FloatFormat) isExtra() {}
