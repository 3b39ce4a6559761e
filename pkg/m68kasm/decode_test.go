package m68kasm

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		used uint32
		want Inst
	}{
		{
			"move.b d0,d1",
			[]byte{0x12, 0x00},
			2,
			Inst{Size: 1, Op: MOVE, Args: [2]Operand{D0, D1}},
		},
		{
			"lea 8(a0),a1",
			[]byte{0x43, 0xe8, 0x00, 0x08},
			4,
			Inst{Size: 4, Op: LEA, Args: [2]Operand{ARDisp{Reg: A0, Disp: Displacement{Base: 8}}, A1}},
		},
		{
			"asl.b #3,d7",
			[]byte{0xe7, 0x07},
			2,
			Inst{Size: 1, Op: ASL, Args: [2]Operand{Imm8(3), D7}},
		},
		{
			"fabs.x fp1,fp1",
			[]byte{0xf2, 0x00, 0x04, 0x98},
			4,
			Inst{Size: 10, Op: FABS, Args: [2]Operand{FP1, FP1}},
		},
		{
			"bfchg (a4){12:7}",
			[]byte{0xea, 0xd4, 0x03, 0x07},
			4,
			Inst{Op: BFCHG, Args: [2]Operand{ARIndirect{A4}}, Extra: Bitfield{Offset: BitfieldStatic(12), Width: BitfieldStatic(7)}},
		},
		{
			"nop",
			[]byte{0x4e, 0x71},
			2,
			Inst{Op: NOP},
		},
		{
			"rts",
			[]byte{0x4e, 0x75},
			2,
			Inst{Op: RTS},
		},
		{
			"moveq #-1,d2",
			[]byte{0x74, 0xff},
			2,
			Inst{Size: 4, Op: MOVEQ, Args: [2]Operand{Imm8(0xff), D2}},
		},
		{
			"move.l #$12345678,-(a7)",
			[]byte{0x2f, 0x3c, 0x12, 0x34, 0x56, 0x78},
			6,
			Inst{Size: 4, Op: MOVE, Args: [2]Operand{Imm32(0x12345678), ARPreDec{A7}}},
		},
		{
			"move.w (a0)+,$1234.w",
			[]byte{0x31, 0xd8, 0x12, 0x34},
			4,
			Inst{Size: 2, Op: MOVE, Args: [2]Operand{ARPostInc{A0}, Abs16(0x1234)}},
		},
		{
			"movea.l d3,a5",
			[]byte{0x2a, 0x43},
			2,
			Inst{Size: 4, Op: MOVEA, Args: [2]Operand{D3, A5}},
		},
		{
			"ori.b #$12,d0",
			[]byte{0x00, 0x00, 0x00, 0x12},
			4,
			Inst{Size: 1, Op: ORI, Args: [2]Operand{Imm8(0x12), D0}},
		},
		{
			"ori #$1f,ccr",
			[]byte{0x00, 0x3c, 0x00, 0x1f},
			4,
			Inst{Size: 1, Op: ORITOCCR, Args: [2]Operand{Imm8(0x1f), Implied{}}},
		},
		{
			"andi #$2700,sr",
			[]byte{0x02, 0x7c, 0x27, 0x00},
			4,
			Inst{Size: 2, Op: ANDITOSR, Args: [2]Operand{Imm16(0x2700), Implied{}}},
		},
		{
			"btst #7,d1",
			[]byte{0x08, 0x01, 0x00, 0x07},
			4,
			Inst{Size: 4, Op: BTST, Args: [2]Operand{Imm8(7), D1}},
		},
		{
			"bset d2,(a1)",
			[]byte{0x05, 0xd1},
			2,
			Inst{Size: 1, Op: BSET, Args: [2]Operand{D2, ARIndirect{A1}}},
		},
		{
			"movep.w 4(a2),d3",
			[]byte{0x07, 0x0a, 0x00, 0x04},
			4,
			Inst{Size: 2, Op: MOVEP, Args: [2]Operand{ARDisp{Reg: A2, Disp: Displacement{Base: 4}}, D3}},
		},
		{
			"movep.l d3,4(a2)",
			[]byte{0x07, 0xca, 0x00, 0x04},
			4,
			Inst{Size: 4, Op: MOVEP, Args: [2]Operand{D3, ARDisp{Reg: A2, Disp: Displacement{Base: 4}}}},
		},
		{
			"chk2.w (a0),d1",
			[]byte{0x02, 0xd0, 0x18, 0x00},
			4,
			Inst{Size: 2, Op: CHK2, Args: [2]Operand{ARIndirect{A0}, D1}},
		},
		{
			"cmp2.l (a0),a2",
			[]byte{0x04, 0xd0, 0xa0, 0x00},
			4,
			Inst{Size: 4, Op: CMP2, Args: [2]Operand{ARIndirect{A0}, A2}},
		},
		{
			"cas.l d1,d2,(a0)",
			[]byte{0x0e, 0xd0, 0x00, 0x81},
			4,
			Inst{Size: 4, Op: CAS, Args: [2]Operand{DataRegPair{First: D1, Second: D2}, ARIndirect{A0}}},
		},
		{
			"moves.l a1,(a0)",
			[]byte{0x0e, 0x90, 0x98, 0x00},
			4,
			Inst{Size: 4, Op: MOVES, Args: [2]Operand{A1, ARIndirect{A0}}},
		},
		{
			"callm #4,(a0)",
			[]byte{0x06, 0xd0, 0x00, 0x04},
			4,
			Inst{Op: CALLM, Args: [2]Operand{Imm8(4), ARIndirect{A0}}},
		},
		{
			"rtm a3",
			[]byte{0x06, 0xcb},
			2,
			Inst{Op: RTM, Args: [2]Operand{A3}},
		},
		{
			"stop #$2000",
			[]byte{0x4e, 0x72, 0x20, 0x00},
			4,
			Inst{Size: 2, Op: STOP, Args: [2]Operand{Imm16(0x2000)}},
		},
		{
			"movec vbr,d0",
			[]byte{0x4e, 0x7a, 0x08, 0x01},
			4,
			Inst{Size: 4, Op: MOVEC, Args: [2]Operand{ControlReg(0x801), D0}},
		},
		{
			"movec a1,cacr",
			[]byte{0x4e, 0x7b, 0x90, 0x02},
			4,
			Inst{Size: 4, Op: MOVEC, Args: [2]Operand{A1, ControlReg(0x002)}},
		},
		{
			"trap #15",
			[]byte{0x4e, 0x4f},
			2,
			Inst{Op: TRAP, Args: [2]Operand{Imm8(15)}},
		},
		{
			"link.w a6,#-8",
			[]byte{0x4e, 0x56, 0xff, 0xf8},
			4,
			Inst{Size: 2, Op: LINK, Args: [2]Operand{A6, Imm16(0xfff8)}},
		},
		{
			"link.l a6,#-65536",
			[]byte{0x48, 0x0e, 0xff, 0xff, 0x00, 0x00},
			6,
			Inst{Size: 4, Op: LINK, Args: [2]Operand{A6, Imm32(0xffff0000)}},
		},
		{
			"unlk a6",
			[]byte{0x4e, 0x5e},
			2,
			Inst{Op: UNLK, Args: [2]Operand{A6}},
		},
		{
			"move a2,usp",
			[]byte{0x4e, 0x62},
			2,
			Inst{Size: 4, Op: MOVETOUSP, Args: [2]Operand{A2, Implied{}}},
		},
		{
			"jsr (a0)",
			[]byte{0x4e, 0x90},
			2,
			Inst{Op: JSR, Args: [2]Operand{ARIndirect{A0}}},
		},
		{
			"swap d3",
			[]byte{0x48, 0x43},
			2,
			Inst{Size: 4, Op: SWAP, Args: [2]Operand{D3}},
		},
		{
			"bkpt #5",
			[]byte{0x48, 0x4d},
			2,
			Inst{Op: BKPT, Args: [2]Operand{Imm8(5)}},
		},
		{
			"pea (a5)",
			[]byte{0x48, 0x55},
			2,
			Inst{Size: 4, Op: PEA, Args: [2]Operand{ARIndirect{A5}}},
		},
		{
			"ext.w d1",
			[]byte{0x48, 0x81},
			2,
			Inst{Size: 2, Op: EXT, Args: [2]Operand{D1}},
		},
		{
			"extb.l d1",
			[]byte{0x49, 0xc1},
			2,
			Inst{Size: 4, Op: EXTB, Args: [2]Operand{D1}},
		},
		{
			"movem.l d0-d1/a6,-(a7)",
			[]byte{0x48, 0xe7, 0xc0, 0x02},
			4,
			Inst{Size: 4, Op: MOVEM, Args: [2]Operand{RegList(0x4003), ARPreDec{A7}}},
		},
		{
			"movem.w (a7)+,d0/a0",
			[]byte{0x4c, 0x9f, 0x01, 0x01},
			4,
			Inst{Size: 2, Op: MOVEM, Args: [2]Operand{ARPostInc{A7}, RegList(0x0101)}},
		},
		{
			"mulu.l d1,d2",
			[]byte{0x4c, 0x01, 0x20, 0x00},
			4,
			Inst{Size: 4, Op: MULU, Args: [2]Operand{D1, D2}},
		},
		{
			"muls.l d1,d3:d2",
			[]byte{0x4c, 0x01, 0x2c, 0x03},
			4,
			Inst{Size: 4, Op: MULS, Args: [2]Operand{D1, DataRegPair{First: D3, Second: D2}}},
		},
		{
			"divu.l d1,d2",
			[]byte{0x4c, 0x41, 0x20, 0x02},
			4,
			Inst{Size: 4, Op: DIVU, Args: [2]Operand{D1, D2}},
		},
		{
			"divsl.l d1,d3:d2",
			[]byte{0x4c, 0x41, 0x28, 0x03},
			4,
			Inst{Size: 4, Op: DIVSL, Args: [2]Operand{D1, DataRegPair{First: D3, Second: D2}}},
		},
		{
			"divs.l d1,d3:d2 quad",
			[]byte{0x4c, 0x41, 0x2c, 0x03},
			4,
			Inst{Size: 4, Op: DIVS, Args: [2]Operand{D1, DataRegPair{First: D3, Second: D2}}},
		},
		{
			"lea (a0,d1.w*4),a2",
			[]byte{0x45, 0xf0, 0x14, 0x00},
			4,
			Inst{Size: 4, Op: LEA, Args: [2]Operand{ARDisp{Reg: A0, Disp: Displacement{Indexer: DataIndex{Reg: D1, Scale: 2}}}, A2}},
		},
		{
			"chk.w (a0),d1",
			[]byte{0x43, 0x90},
			2,
			Inst{Size: 2, Op: CHK, Args: [2]Operand{ARIndirect{A0}, D1}},
		},
		{
			"move sr,d0",
			[]byte{0x40, 0xc0},
			2,
			Inst{Size: 2, Op: MOVEFROMSR, Args: [2]Operand{Implied{}, D0}},
		},
		{
			"move #0,ccr",
			[]byte{0x44, 0xfc, 0x00, 0x00},
			4,
			Inst{Size: 2, Op: MOVETOCCR, Args: [2]Operand{Imm16(0), Implied{}}},
		},
		{
			"clr.l d4",
			[]byte{0x42, 0x84},
			2,
			Inst{Size: 4, Op: CLR, Args: [2]Operand{D4}},
		},
		{
			"tst.w (a1)",
			[]byte{0x4a, 0x51},
			2,
			Inst{Size: 2, Op: TST, Args: [2]Operand{ARIndirect{A1}}},
		},
		{
			"tas (a1)",
			[]byte{0x4a, 0xd1},
			2,
			Inst{Size: 1, Op: TAS, Args: [2]Operand{ARIndirect{A1}}},
		},
		{
			"illegal",
			[]byte{0x4a, 0xfc},
			2,
			Inst{Op: ILLEGAL},
		},
		{
			"dbf d0,*-2",
			[]byte{0x51, 0xc8, 0xff, 0xfc},
			4,
			Inst{Size: 2, Op: DBCC, Args: [2]Operand{D0, PCDisp{Offset: 2, Disp: Displacement{Base: -4}}}, Extra: CondF},
		},
		{
			"trapne.w #1",
			[]byte{0x56, 0xfa, 0x00, 0x01},
			4,
			Inst{Size: 2, Op: TRAPCC, Args: [2]Operand{Imm16(1)}, Extra: CondNE},
		},
		{
			"trapt",
			[]byte{0x50, 0xfc},
			2,
			Inst{Op: TRAPCC, Extra: CondT},
		},
		{
			"seq d0",
			[]byte{0x57, 0xc0},
			2,
			Inst{Size: 1, Op: SCC, Args: [2]Operand{D0}, Extra: CondEQ},
		},
		{
			"addq.w #8,a0",
			[]byte{0x50, 0x48},
			2,
			Inst{Size: 2, Op: ADDQ, Args: [2]Operand{Imm8(8), A0}},
		},
		{
			"subq.l #1,d0",
			[]byte{0x53, 0x80},
			2,
			Inst{Size: 4, Op: SUBQ, Args: [2]Operand{Imm8(1), D0}},
		},
		{
			"bra.s *+4",
			[]byte{0x60, 0x02},
			2,
			Inst{Size: 1, Op: BRA, Args: [2]Operand{PCDisp{Offset: 2, Disp: Displacement{Base: 2}}}},
		},
		{
			"bsr.w *+$100",
			[]byte{0x61, 0x00, 0x00, 0xfe},
			4,
			Inst{Size: 2, Op: BSR, Args: [2]Operand{PCDisp{Offset: 2, Disp: Displacement{Base: 0xfe}}}},
		},
		{
			"bne.l",
			[]byte{0x66, 0xff, 0x00, 0x01, 0x00, 0x00},
			6,
			Inst{Size: 4, Op: BCC, Args: [2]Operand{PCDisp{Offset: 2, Disp: Displacement{Base: 0x10000}}}, Extra: CondNE},
		},
		{
			"beq.s *-2",
			[]byte{0x67, 0xfc},
			2,
			Inst{Size: 1, Op: BCC, Args: [2]Operand{PCDisp{Offset: 2, Disp: Displacement{Base: -4}}}, Extra: CondEQ},
		},
		{
			"divu.w d1,d0",
			[]byte{0x80, 0xc1},
			2,
			Inst{Size: 2, Op: DIVU, Args: [2]Operand{D1, D0}},
		},
		{
			"sbcd -(a1),-(a0)",
			[]byte{0x81, 0x09},
			2,
			Inst{Size: 1, Op: SBCD, Args: [2]Operand{ARPreDec{A1}, ARPreDec{A0}}},
		},
		{
			"pack d1,d0,#$30",
			[]byte{0x81, 0x41, 0x00, 0x30},
			4,
			Inst{Op: PACK, Args: [2]Operand{D1, D0}, Extra: PackAdjust(0x30)},
		},
		{
			"unpk -(a1),-(a0),#0",
			[]byte{0x81, 0x89, 0x00, 0x00},
			4,
			Inst{Op: UNPK, Args: [2]Operand{ARPreDec{A1}, ARPreDec{A0}}, Extra: PackAdjust(0)},
		},
		{
			"or.w d1,(a0)",
			[]byte{0x83, 0x50},
			2,
			Inst{Size: 2, Op: OR, Args: [2]Operand{D1, ARIndirect{A0}}},
		},
		{
			"sub.l (a0),d1",
			[]byte{0x92, 0x90},
			2,
			Inst{Size: 4, Op: SUB, Args: [2]Operand{ARIndirect{A0}, D1}},
		},
		{
			"suba.w d0,a1",
			[]byte{0x92, 0xc0},
			2,
			Inst{Size: 2, Op: SUBA, Args: [2]Operand{D0, A1}},
		},
		{
			"subx.b d1,d2",
			[]byte{0x95, 0x01},
			2,
			Inst{Size: 1, Op: SUBX, Args: [2]Operand{D1, D2}},
		},
		{
			"cmpa.l a0,a1",
			[]byte{0xb3, 0xc8},
			2,
			Inst{Size: 4, Op: CMPA, Args: [2]Operand{A0, A1}},
		},
		{
			"cmpm.w (a0)+,(a1)+",
			[]byte{0xb3, 0x48},
			2,
			Inst{Size: 2, Op: CMPM, Args: [2]Operand{ARPostInc{A0}, ARPostInc{A1}}},
		},
		{
			"cmp.b d0,d1",
			[]byte{0xb2, 0x00},
			2,
			Inst{Size: 1, Op: CMP, Args: [2]Operand{D0, D1}},
		},
		{
			"eor.l d1,d0",
			[]byte{0xb3, 0x80},
			2,
			Inst{Size: 4, Op: EOR, Args: [2]Operand{D1, D0}},
		},
		{
			"mulu.w d1,d0",
			[]byte{0xc0, 0xc1},
			2,
			Inst{Size: 2, Op: MULU, Args: [2]Operand{D1, D0}},
		},
		{
			"abcd d1,d0",
			[]byte{0xc1, 0x01},
			2,
			Inst{Size: 1, Op: ABCD, Args: [2]Operand{D1, D0}},
		},
		{
			"exg d0,d1",
			[]byte{0xc1, 0x41},
			2,
			Inst{Size: 4, Op: EXG, Args: [2]Operand{D0, D1}},
		},
		{
			"exg a0,a1",
			[]byte{0xc1, 0x49},
			2,
			Inst{Size: 4, Op: EXG, Args: [2]Operand{A0, A1}},
		},
		{
			"exg d0,a1",
			[]byte{0xc1, 0x89},
			2,
			Inst{Size: 4, Op: EXG, Args: [2]Operand{D0, A1}},
		},
		{
			"and.w (a0),d1",
			[]byte{0xc2, 0x50},
			2,
			Inst{Size: 2, Op: AND, Args: [2]Operand{ARIndirect{A0}, D1}},
		},
		{
			"add.b d0,d1",
			[]byte{0xd2, 0x00},
			2,
			Inst{Size: 1, Op: ADD, Args: [2]Operand{D0, D1}},
		},
		{
			"addx.l -(a0),-(a1)",
			[]byte{0xd3, 0x88},
			2,
			Inst{Size: 4, Op: ADDX, Args: [2]Operand{ARPreDec{A0}, ARPreDec{A1}}},
		},
		{
			"adda.l #$10,a0",
			[]byte{0xd1, 0xfc, 0x00, 0x00, 0x00, 0x10},
			6,
			Inst{Size: 4, Op: ADDA, Args: [2]Operand{Imm32(0x10), A0}},
		},
		{
			"lsr.w d1,d2",
			[]byte{0xe2, 0x6a},
			2,
			Inst{Size: 2, Op: LSR, Args: [2]Operand{D1, D2}},
		},
		{
			"rol.l #8,d0",
			[]byte{0xe1, 0x98},
			2,
			Inst{Size: 4, Op: ROL, Args: [2]Operand{Imm8(8), D0}},
		},
		{
			"roxr.w (a0)",
			[]byte{0xe4, 0xd0},
			2,
			Inst{Size: 2, Op: ROXR, Args: [2]Operand{ARIndirect{A0}}},
		},
		{
			"bfextu d0{d1:4},d2",
			[]byte{0xe9, 0xc0, 0x28, 0x44},
			4,
			Inst{Op: BFEXTU, Args: [2]Operand{D0, D2}, Extra: Bitfield{Offset: BitfieldDynamic(1), Width: BitfieldStatic(4)}},
		},
		{
			"bfins d3,(a0){32:32}",
			[]byte{0xef, 0xd0, 0x30, 0x00},
			4,
			Inst{Op: BFINS, Args: [2]Operand{D3, ARIndirect{A0}}, Extra: Bitfield{Offset: BitfieldStatic(32), Width: BitfieldStatic(32)}},
		},
		{
			"bfchg (a4){32:7}",
			[]byte{0xea, 0xd4, 0x00, 0x07},
			4,
			Inst{Op: BFCHG, Args: [2]Operand{ARIndirect{A4}}, Extra: Bitfield{Offset: BitfieldStatic(32), Width: BitfieldStatic(7)}},
		},
		{
			"fadd.s (a0),fp2",
			[]byte{0xf2, 0x10, 0x45, 0x22},
			4,
			Inst{Size: 4, Op: FADD, Args: [2]Operand{ARIndirect{A0}, FP2}, Extra: FloatFormat{FPSingle{}}},
		},
		{
			"fmove.d fp3,(a1)",
			[]byte{0xf2, 0x11, 0x75, 0x80},
			4,
			Inst{Size: 8, Op: FMOVE, Args: [2]Operand{FP3, ARIndirect{A1}}, Extra: FloatFormat{FPDouble{}}},
		},
		{
			"fmove.p fp0,(a0){#-2}",
			[]byte{0xf2, 0x10, 0x6c, 0x7e},
			4,
			Inst{Size: 12, Op: FMOVE, Args: [2]Operand{FP0, ARIndirect{A0}}, Extra: FloatFormat{FPPackedStatic{K: -2}}},
		},
		{
			"fmovecr #$32,fp1",
			[]byte{0xf2, 0x00, 0x5c, 0xb2},
			4,
			Inst{Size: 10, Op: FMOVECR, Args: [2]Operand{Imm8(0x32), FP1}},
		},
		{
			"fsincos.x fp0,fp1:fp2",
			[]byte{0xf2, 0x00, 0x01, 0x31},
			4,
			Inst{Size: 10, Op: FSINCOS, Args: [2]Operand{FP0, FPRegPair{First: FP1, Second: FP2}}},
		},
		{
			"ftst.x fp3",
			[]byte{0xf2, 0x00, 0x0c, 0x3a},
			4,
			Inst{Size: 10, Op: FTST, Args: [2]Operand{FP3}},
		},
		{
			"fdadd.x fp1,fp0",
			[]byte{0xf2, 0x00, 0x04, 0x66},
			4,
			Inst{Size: 10, Op: FDADD, Args: [2]Operand{FP1, FP0}},
		},
		{
			"fmove.l d0,fpcr",
			[]byte{0xf2, 0x00, 0x90, 0x00},
			4,
			Inst{Size: 4, Op: FMOVE, Args: [2]Operand{D0, RegList(4)}},
		},
		{
			"fmovem.l fpsr/fpiar,(a0)",
			[]byte{0xf2, 0x10, 0xac, 0x00},
			4,
			Inst{Size: 4, Op: FMOVEM, Args: [2]Operand{RegList(3), ARIndirect{A0}}},
		},
		{
			"fmovem.x fp0/fp7,-(a7)",
			[]byte{0xf2, 0x27, 0xe0, 0x81},
			4,
			Inst{Size: 10, Op: FMOVEM, Args: [2]Operand{RegList(0x81), ARPreDec{A7}}},
		},
		{
			"fmovem.x (a7)+,fp0/fp1",
			[]byte{0xf2, 0x1f, 0xd0, 0xc0},
			4,
			Inst{Size: 10, Op: FMOVEM, Args: [2]Operand{ARPostInc{A7}, RegList(0x03)}},
		},
		{
			"fmovem.x (a0),d1",
			[]byte{0xf2, 0x10, 0xd8, 0x10},
			4,
			Inst{Size: 10, Op: FMOVEM, Args: [2]Operand{ARIndirect{A0}, D1}},
		},
		{
			"fbeq.w",
			[]byte{0xf2, 0x81, 0x00, 0x10},
			4,
			Inst{Size: 2, Op: FBCC, Args: [2]Operand{PCDisp{Offset: 2, Disp: Displacement{Base: 0x10}}}, Extra: FPCondEQ},
		},
		{
			"fbf.w with a non-zero displacement",
			[]byte{0xf2, 0x80, 0x00, 0x02},
			4,
			Inst{Size: 2, Op: FBCC, Args: [2]Operand{PCDisp{Offset: 2, Disp: Displacement{Base: 2}}}, Extra: FPCondF},
		},
		{
			"fbgt.l",
			[]byte{0xf2, 0xd2, 0xff, 0xff, 0xff, 0xfe},
			6,
			Inst{Size: 4, Op: FBCC, Args: [2]Operand{PCDisp{Offset: 2, Disp: Displacement{Base: -2}}}, Extra: FPCondGT},
		},
		{
			"fnop",
			[]byte{0xf2, 0x80, 0x00, 0x00},
			4,
			Inst{Op: FNOP},
		},
		{
			"fdbne d2",
			[]byte{0xf2, 0x4a, 0x00, 0x0e, 0xff, 0xfa},
			6,
			Inst{Size: 2, Op: FDBCC, Args: [2]Operand{D2, PCDisp{Offset: 4, Disp: Displacement{Base: -6}}}, Extra: FPCondNE},
		},
		{
			"fseq (a0)",
			[]byte{0xf2, 0x50, 0x00, 0x01},
			4,
			Inst{Size: 1, Op: FSCC, Args: [2]Operand{ARIndirect{A0}}, Extra: FPCondEQ},
		},
		{
			"ftrapun.w #7",
			[]byte{0xf2, 0x7a, 0x00, 0x08, 0x00, 0x07},
			6,
			Inst{Size: 2, Op: FTRAPCC, Args: [2]Operand{Imm16(7)}, Extra: FPCondUN},
		},
		{
			"fsave -(a7)",
			[]byte{0xf3, 0x27},
			2,
			Inst{Op: FSAVE, Args: [2]Operand{ARPreDec{A7}}},
		},
		{
			"move16 (a0)+,(a1)+",
			[]byte{0xf6, 0x20, 0x90, 0x00},
			4,
			Inst{Op: MOVE16, Args: [2]Operand{ARPostInc{A0}, ARPostInc{A1}}},
		},
		{
			"move16 $1000.l,(a2)",
			[]byte{0xf6, 0x1a, 0x00, 0x00, 0x10, 0x00},
			6,
			Inst{Op: MOVE16, Args: [2]Operand{Abs32(0x1000), ARIndirect{A2}}},
		},
		{
			"move16 (a3)+,$2000.l",
			[]byte{0xf6, 0x03, 0x00, 0x00, 0x20, 0x00},
			6,
			Inst{Op: MOVE16, Args: [2]Operand{ARPostInc{A3}, Abs32(0x2000)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.src)
			if err != nil {
				t.Fatalf("Decode(% x): %v", tt.src, err)
			}
			if got.BytesUsed != tt.used {
				t.Errorf("BytesUsed = %d, want %d", got.BytesUsed, tt.used)
			}
			if !reflect.DeepEqual(got.Inst, tt.want) {
				t.Errorf("Decode(% x)\n got %#v\nwant %#v", tt.src, got.Inst, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, ErrOutOfSpace},
		{"odd byte", []byte{0x4e}, ErrOutOfSpace},
		{"line a", []byte{0xa0, 0x00}, ErrNotImplemented},
		{"line a trap", []byte{0xaf, 0xff, 0x00, 0x00}, ErrNotImplemented},
		{"moveq with bit 8", []byte{0x71, 0x00}, ErrNotImplemented},
		{"cas2", []byte{0x0c, 0xfc, 0x00, 0x00, 0x00, 0x00}, ErrNotImplemented},
		{"truncated lea", []byte{0x43, 0xe8, 0x00}, ErrOutOfSpace},
		{"truncated move.l immediate", []byte{0x20, 0x3c, 0x00, 0x00}, ErrOutOfSpace},
		{"truncated bra.l", []byte{0x60, 0xff, 0x00, 0x00}, ErrOutOfSpace},
		{"truncated fpu command", []byte{0xf2, 0x00}, ErrOutOfSpace},
		{"clr to pc relative", []byte{0x42, 0x7a, 0x00, 0x00}, nil},
		{"mode 7 register 5", []byte{0x4a, 0x7d}, ErrBadRegister},
		{"mode 7 register 7", []byte{0x20, 0x3f}, ErrBadRegister},
		{"full extension bit 3", []byte{0x20, 0x30, 0x01, 0x18}, ErrReserved},
		{"full extension bd size 0", []byte{0x20, 0x30, 0x01, 0x00}, ErrReserved},
		{"full extension i/is 4", []byte{0x20, 0x30, 0x01, 0x14}, ErrReserved},
		{"full extension is with i/is 5", []byte{0x20, 0x30, 0x01, 0x55}, ErrReserved},
		{"fbcc predicate bit 5", []byte{0xf2, 0xa0, 0x00, 0x00}, ErrReserved},
		{"fscc predicate bit 5", []byte{0xf2, 0x40, 0x00, 0x20}, ErrReserved},
		{"fpu opclass 1", []byte{0xf2, 0x00, 0x20, 0x00}, ErrNotImplemented},
		{"fpu unknown opmode", []byte{0xf2, 0x00, 0x00, 0x05}, ErrNotImplemented},
		{"fmovem empty control list", []byte{0xf2, 0x00, 0x80, 0x00}, ErrReserved},
		{"mull with reserved bits", []byte{0x4c, 0x01, 0x20, 0x10}, ErrNotImplemented},
		{"move16 without the second word", []byte{0xf6, 0x20}, ErrOutOfSpace},
		{"mull without the second word", []byte{0x4c, 0x00}, ErrOutOfSpace},
		{"cmp2 without the second word", []byte{0x00, 0xc0}, ErrOutOfSpace},
		{"fnop without the second word", []byte{0xf2, 0x80}, ErrOutOfSpace},
		{"movem to data register", []byte{0x4c, 0x80, 0x00, 0x01}, ErrNotImplemented},
		{"movem from address register", []byte{0x48, 0x88, 0x00, 0x01}, ErrNotImplemented},
		{"fdbcc predicate bit 5", []byte{0xf2, 0x48, 0x00, 0x20, 0x00, 0x00}, ErrReserved},
		{"ftrapcc high predicate bits", []byte{0xf2, 0x7c, 0x01, 0x00}, ErrReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.src)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode(% x) = %v, want %v", tt.src, err, tt.want)
			}
		})
	}
}

func TestDecodeErrorDetail(t *testing.T) {
	_, err := Decode([]byte{0x43, 0xe8})
	var derr *Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if derr.Kind != OutOfSpace || derr.Opcode != 0x43e8 || derr.Pos != 2 {
		t.Errorf("got %+v", derr)
	}
	if errors.Is(err, ErrReserved) {
		t.Errorf("%v matched ErrReserved", err)
	}
}

// TestDecodeIgnoresTrailingBytes checks that bytes past the instruction do
// not change the result and that decoding is repeatable.
func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	src := []byte{0x43, 0xe8, 0x00, 0x08}
	want, err := Decode(src)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		got, err := Decode(append(src[:len(src):len(src)], 0x4e, 0x71, 0xff, 0xff))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %#v, want %#v", got, want)
		}
	}
}

// TestDecodeSweep decodes every first word with a zeroed tail and checks
// the length and error invariants.
func TestDecodeSweep(t *testing.T) {
	buf := make([]byte, 22)
	for w := 0; w < 0x10000; w++ {
		buf[0], buf[1] = byte(w>>8), byte(w)
		got, err := Decode(buf)
		if err != nil {
			var derr *Error
			if !errors.As(err, &derr) {
				t.Fatalf("%#04x: error %T is not *Error", w, err)
			}
			if derr.Opcode != uint16(w) {
				t.Fatalf("%#04x: error opcode %#04x", w, derr.Opcode)
			}
			continue
		}
		if got.BytesUsed < 2 || got.BytesUsed%2 != 0 || got.BytesUsed > uint32(len(buf)) {
			t.Fatalf("%#04x: BytesUsed %d", w, got.BytesUsed)
		}
		if got.Inst.Op == 0 || got.Inst.Op >= opCount {
			t.Fatalf("%#04x: op %v", w, got.Inst.Op)
		}
		if w>>12 == 0xa {
			t.Fatalf("%#04x: line A decoded as %v", w, got.Inst.Op)
		}
	}
}
