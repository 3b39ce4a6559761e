package m68kasm

// Effective address mode field values.
const (
	modeDn      = 0 // Dn
	modeAn      = 1 // An
	modeInd     = 2 // (An)
	modePostInc = 3 // (An)+
	modePreDec  = 4 // -(An)
	modeDisp    = 5 // (d16,An)
	modeIndex   = 6 // (d8,An,Xn) and the full extension word forms
	modeOther   = 7 // selected by the register field
)

// Register field values under modeOther.
const (
	otherAbsW    = 0 // (xxx).W
	otherAbsL    = 1 // (xxx).L
	otherPCDisp  = 2 // (d16,PC)
	otherPCIndex = 3 // (d8,PC,Xn) and the full extension word forms
	otherImm     = 4 // #<data>
)

// ea resolves the effective address with the given register and mode
// fields, consuming any extension words. size is the operand size in bytes
// and only matters for immediate operands.
func (c *cursor) ea(reg, mode uint16, size int) Operand {
	reg &= 7
	switch mode & 7 {
	case modeDn:
		return DataReg(reg)
	case modeAn:
		return AddrReg(reg)
	case modeInd:
		return ARIndirect{AddrReg(reg)}
	case modePostInc:
		return ARPostInc{AddrReg(reg)}
	case modePreDec:
		return ARPreDec{AddrReg(reg)}
	case modeDisp:
		d := int16(c.pull16())
		return ARDisp{Reg: AddrReg(reg), Disp: Displacement{Base: int32(d)}}
	case modeIndex:
		return c.extended(AddrReg(reg), false)
	}

	switch reg {
	case otherAbsW:
		return Abs16(int16(c.pull16()))
	case otherAbsL:
		return Abs32(c.pull32())
	case otherPCDisp:
		pos := uint32(c.pos)
		d := int16(c.pull16())
		return PCDisp{Offset: pos, Disp: Displacement{Base: int32(d)}}
	case otherPCIndex:
		return c.extended(0, true)
	case otherImm:
		return c.imm(size)
	}
	c.fail(BadRegister)
	return nil
}

// imm reads an immediate operand of the given size.
func (c *cursor) imm(size int) Operand {
	switch size {
	case 1:
		return Imm8(c.pull16() & 0xff)
	case 2:
		return Imm16(c.pull16())
	case 4:
		return Imm32(c.pull32())
	}
	c.fail(BadSize)
	return nil
}

// extended decodes a brief or full format extension word. With pc set the
// base is the program counter, sampled at the extension word.
func (c *cursor) extended(base AddrReg, pc bool) Operand {
	pos := uint32(c.pos)
	ext := c.pull16()

	var d Displacement
	if ext&0x0100 == 0 {
		d.Base = int32(int8(ext & 0xff))
		d.Indexer = indexer(ext)
	} else {
		d = c.fullExtension(ext)
		if ext&0x0080 != 0 {
			return Disp{Disp: d}
		}
	}

	if pc {
		return PCDisp{Offset: pos, Disp: d}
	}
	return ARDisp{Reg: base, Disp: d}
}

// indexer decodes the index register fields shared by both extension word
// formats.
func indexer(ext uint16) Indexer {
	reg := (ext >> 12) & 7
	scale := uint8((ext >> 9) & 3)
	long := ext&0x0800 != 0
	if ext&0x8000 != 0 {
		return AddrIndex{Reg: AddrReg(reg), Scale: scale, Long: long}
	}
	return DataIndex{Reg: DataReg(reg), Scale: scale, Long: long}
}

// fullExtension decodes the remainder of a full format extension word:
// base displacement, index suppression and memory indirection.
func (c *cursor) fullExtension(ext uint16) Displacement {
	var d Displacement
	if ext&0x0008 != 0 {
		c.fail(Reserved)
	}
	indexSuppressed := ext&0x0040 != 0
	if !indexSuppressed {
		d.Indexer = indexer(ext)
	}

	d.Base = c.displacement((ext >> 4) & 3)

	iis := ext & 7
	switch {
	case iis == 0:
		d.Indirection = NoIndirection
		return d
	case indexSuppressed && iis >= 4:
		c.fail(Reserved)
		return d
	case indexSuppressed:
		d.Indirection = Indirect
	case iis == 4:
		c.fail(Reserved)
		return d
	case iis < 4:
		d.Indirection = IndirectPreIndexed
	default:
		d.Indirection = IndirectPostIndexed
	}

	d.Outer = c.displacement(iis & 3)
	return d
}

// displacement reads a base or outer displacement given its 2-bit size
// code: 1 null, 2 word, 3 long. 0 is reserved.
func (c *cursor) displacement(code uint16) int32 {
	switch code & 3 {
	case 1:
		return 0
	case 2:
		return int32(int16(c.pull16()))
	case 3:
		return int32(c.pull32())
	}
	c.fail(Reserved)
	return 0
}
