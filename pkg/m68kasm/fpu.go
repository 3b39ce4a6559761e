package m68kasm

// fpOpmodes maps the 7-bit opmode of an FPU general instruction to its Op.
// FSINCOS occupies 0x30-0x37, the low three bits naming FPc.
var fpOpmodes = [0x80]Op{
	0x00: FMOVE,
	0x01: FINT,
	0x02: FSINH,
	0x03: FINTRZ,
	0x04: FSQRT,
	0x06: FLOGNP1,
	0x08: FETOXM1,
	0x09: FTANH,
	0x0a: FATAN,
	0x0c: FASIN,
	0x0d: FATANH,
	0x0e: FSIN,
	0x0f: FTAN,
	0x10: FETOX,
	0x11: FTWOTOX,
	0x12: FTENTOX,
	0x14: FLOGN,
	0x15: FLOG10,
	0x16: FLOG2,
	0x18: FABS,
	0x19: FCOSH,
	0x1a: FNEG,
	0x1c: FACOS,
	0x1d: FCOS,
	0x1e: FGETEXP,
	0x1f: FGETMAN,
	0x20: FDIV,
	0x21: FMOD,
	0x22: FADD,
	0x23: FMUL,
	0x24: FSGLDIV,
	0x25: FREM,
	0x26: FSCALE,
	0x27: FSGLMUL,
	0x28: FSUB,
	0x30: FSINCOS,
	0x31: FSINCOS,
	0x32: FSINCOS,
	0x33: FSINCOS,
	0x34: FSINCOS,
	0x35: FSINCOS,
	0x36: FSINCOS,
	0x37: FSINCOS,
	0x38: FCMP,
	0x3a: FTST,

	// 68040 single and double rounding variants.
	0x40: FSMOVE,
	0x41: FSSQRT,
	0x44: FDMOVE,
	0x45: FDSQRT,
	0x58: FSABS,
	0x5a: FSNEG,
	0x5c: FDABS,
	0x5e: FDNEG,
	0x60: FSDIV,
	0x62: FSADD,
	0x63: FSMUL,
	0x64: FDDIV,
	0x66: FDADD,
	0x67: FDMUL,
	0x68: FSSUB,
	0x6c: FDSUB,
}

// FPU command word opclasses, bits 15-13.
const (
	fpRegToReg     = 0
	fpEAToReg      = 2
	fpRegToEA      = 3
	fpEAToControl  = 4
	fpControlToEA  = 5
	fpEAToRegs     = 6
	fpRegsToEA     = 7
	fpMovecrPrefix = 0x5c00
)

// decFPGeneral decodes the coprocessor general instruction, F200 with an
// effective address field, by the opclass of its command word.
func decFPGeneral(c *cursor, f *instFormat, w uint16) Inst {
	ext := c.pull16()
	switch ext >> 13 {
	case fpRegToReg:
		return c.fpArith(ext, FPReg((ext>>10)&7), nil)
	case fpEAToReg:
		if ext&0xfc00 == fpMovecrPrefix {
			return Inst{Size: 10, Op: FMOVECR, Args: [2]Operand{Imm8(ext & 0x7f), FPReg((ext >> 7) & 7)}}
		}
		format := fpFormat((ext>>10)&7, 0)
		src := c.eaLow(w, format.Size())
		return c.fpArith(ext, src, format)
	case fpRegToEA:
		format := fpFormat((ext>>10)&7, ext&0x7f)
		dst := c.eaLow(w, format.Size())
		return Inst{
			Size:  format.Size(),
			Op:    FMOVE,
			Args:  [2]Operand{FPReg((ext >> 7) & 7), dst},
			Extra: FloatFormat{format},
		}
	case fpEAToControl, fpControlToEA:
		return c.fpMoveControl(w, ext)
	case fpEAToRegs, fpRegsToEA:
		return c.fpMoveData(w, ext)
	}
	c.fail(NotImplemented)
	return Inst{}
}

// fpArith builds an arithmetic instruction from its opmode. format is nil
// when the source is a floating point register.
func (c *cursor) fpArith(ext uint16, src Operand, format FPFormat) Inst {
	op := fpOpmodes[ext&0x7f]
	if op == 0 {
		c.fail(NotImplemented)
		return Inst{}
	}
	dst := FPReg((ext >> 7) & 7)
	inst := Inst{Size: 10, Op: op}
	if format != nil {
		inst.Size = format.Size()
		inst.Extra = FloatFormat{format}
	}
	switch op {
	case FTST:
		inst.Args = [2]Operand{src}
	case FSINCOS:
		inst.Args = [2]Operand{src, FPRegPair{First: FPReg(ext & 7), Second: dst}}
	default:
		inst.Args = [2]Operand{src, dst}
	}
	return inst
}

// fpMoveControl is FMOVE or FMOVEM of FPCR, FPSR and FPIAR. A single
// register selected is FMOVE.
func (c *cursor) fpMoveControl(w, ext uint16) Inst {
	list := RegList((ext >> 10) & 7)
	if list == 0 {
		c.fail(Reserved)
		return Inst{}
	}
	op := FMOVEM
	if list&(list-1) == 0 {
		op = FMOVE
	}
	ea := c.eaLow(w, 4)
	if ext>>13 == fpControlToEA {
		return Inst{Size: 4, Op: op, Args: [2]Operand{list, ea}}
	}
	return Inst{Size: 4, Op: op, Args: [2]Operand{ea, list}}
}

// fpMoveData is FMOVEM of floating point data registers. Mode 0 and 1 are
// the pre-decrement forms, 1 and 3 take the list from a data register.
func (c *cursor) fpMoveData(w, ext uint16) Inst {
	mode := (ext >> 11) & 3
	var list Operand
	if mode&1 != 0 {
		list = DataReg((ext >> 4) & 7)
	} else {
		list = fmovemList(uint8(ext), mode == 0)
	}
	ea := c.eaLow(w, 10)
	if ext>>13 == fpRegsToEA {
		return Inst{Size: 10, Op: FMOVEM, Args: [2]Operand{list, ea}}
	}
	return Inst{Size: 10, Op: FMOVEM, Args: [2]Operand{ea, list}}
}

// fpPredicate reads the predicate extension word of FDBcc, FScc and
// FTRAPcc. Only the low six bits may be set and bit 5 is reserved.
func (c *cursor) fpPredicate() FPCondition {
	ext := c.pull16()
	if ext&0xffe0 != 0 {
		c.fail(Reserved)
	}
	return fpcc(ext)
}

func decFScc(c *cursor, f *instFormat, w uint16) Inst {
	cond := c.fpPredicate()
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{c.eaLow(w, f.size)}, Extra: cond}
}

// decFDBcc is FDBcc Dn,<label>. The displacement follows the predicate
// word.
func decFDBcc(c *cursor, f *instFormat, w uint16) Inst {
	cond := c.fpPredicate()
	pos := uint32(c.pos)
	d := int16(c.pull16())
	target := PCDisp{Offset: pos, Disp: Displacement{Base: int32(d)}}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{DataReg(w & 7), target}, Extra: cond}
}

func decFTrapcc(c *cursor, f *instFormat, w uint16) Inst {
	cond := c.fpPredicate()
	inst := Inst{Size: f.size, Op: f.op, Extra: cond}
	if f.size != 0 {
		inst.Args[0] = c.imm(f.size)
	}
	return inst
}

// decFBcc is FBcc with a word or long displacement; the predicate is in
// the low six bits of the opcode word.
func decFBcc(c *cursor, f *instFormat, w uint16) Inst {
	if w&0x0020 != 0 {
		c.fail(Reserved)
	}
	pos := uint32(c.pos)
	var d int32
	if f.size == 4 {
		d = int32(c.pull32())
	} else {
		d = int32(int16(c.pull16()))
	}
	target := PCDisp{Offset: pos, Disp: Displacement{Base: d}}
	return Inst{Size: f.size, Op: f.op, Args: [2]Operand{target}, Extra: fpcc(w)}
}

// decFNop consumes the zero word that tells FNOP apart from FBF.W.
func decFNop(c *cursor, f *instFormat, w uint16) Inst {
	c.skipWords(1)
	return Inst{Size: f.size, Op: f.op}
}
