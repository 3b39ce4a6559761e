package listing

import (
	"fmt"

	"github.com/go-delve/m68kdis/pkg/logflags"
	"github.com/go-delve/m68kdis/pkg/m68kasm"
	"github.com/pkg/errors"
)

// AsmInstruction represents one assembly instruction.
type AsmInstruction struct {
	Loc     uint64
	DestLoc *uint64
	Bytes   []byte

	Size int
	Kind AsmInstructionKind

	Inst m68kasm.Inst
	// Err is set when the bytes at Loc could not be decoded. Inst is
	// then the zero value and Size covers the placeholder word.
	Err error
}

type AsmInstructionKind uint8

const (
	OtherInstruction AsmInstructionKind = iota
	CallInstruction
	RetInstruction
	JmpInstruction
	HardBreakInstruction
)

func (instr *AsmInstruction) IsCall() bool {
	return instr.Kind == CallInstruction
}

func (instr *AsmInstruction) IsRet() bool {
	return instr.Kind == RetInstruction
}

func (instr *AsmInstruction) IsJmp() bool {
	return instr.Kind == JmpInstruction
}

func (instr *AsmInstruction) IsHardBreak() bool {
	return instr.Kind == HardBreakInstruction
}

// Text returns the instruction in Motorola syntax, branch targets resolved
// against Loc. Undecodable words are written as dc.w directives.
func (instr *AsmInstruction) Text(symLookup m68kasm.SymLookup) string {
	if instr.Err != nil {
		return dcText(instr.Bytes)
	}
	return m68kasm.MotorolaSyntax(instr.Inst, instr.Loc, symLookup)
}

func dcText(b []byte) string {
	switch len(b) {
	case 0:
		return "dc.w ?"
	case 1:
		return fmt.Sprintf("dc.b $%02x", b[0])
	}
	return fmt.Sprintf("dc.w $%02x%02x", b[0], b[1])
}

// Disassemble decodes mem, loaded at startAddr, one instruction after the
// other. At most max instructions are returned; max <= 0 means no limit.
// Bytes that do not decode produce an instruction with Err set covering a
// single word, and decoding resumes after it.
// The Bytes field of each returned instruction is a slice of mem.
func Disassemble(mem []byte, startAddr uint64, max int) []AsmInstruction {
	logger := logflags.ListingLogger()

	r := make([]AsmInstruction, 0, len(mem)/2)
	pc := startAddr

	for len(mem) > 0 {
		if max > 0 && len(r) >= max {
			break
		}
		inst := decodeAt(mem, pc)
		if inst.Err != nil && logflags.Listing() {
			logflags.WithAddr(logger, pc).Debugf("%v", inst.Err)
		}
		r = append(r, inst)

		pc += uint64(inst.Size)
		mem = mem[inst.Size:]
	}
	return r
}

// decodeAt decodes the single instruction at the start of mem.
func decodeAt(mem []byte, pc uint64) AsmInstruction {
	asmInst := AsmInstruction{Loc: pc}

	d, err := m68kasm.Decode(mem)
	if err != nil {
		asmInst.Size = 2
		if len(mem) < 2 {
			asmInst.Size = len(mem)
		}
		asmInst.Bytes = mem[:asmInst.Size]
		asmInst.Err = errors.Wrapf(err, "decoding at %#x", pc)
		return asmInst
	}

	asmInst.Size = int(d.BytesUsed)
	asmInst.Bytes = mem[:asmInst.Size]
	asmInst.Inst = d.Inst
	asmInst.Kind = kindOf(d.Inst.Op)
	asmInst.DestLoc = resolveDest(&d.Inst, pc)
	return asmInst
}

func kindOf(op m68kasm.Op) AsmInstructionKind {
	switch op {
	case m68kasm.BSR, m68kasm.JSR, m68kasm.CALLM:
		return CallInstruction
	case m68kasm.RTS, m68kasm.RTE, m68kasm.RTR, m68kasm.RTD, m68kasm.RTM:
		return RetInstruction
	case m68kasm.BRA, m68kasm.BCC, m68kasm.DBCC, m68kasm.JMP, m68kasm.FBCC, m68kasm.FDBCC:
		return JmpInstruction
	case m68kasm.ILLEGAL, m68kasm.BKPT:
		return HardBreakInstruction
	}
	return OtherInstruction
}

// resolveDest computes the target of a control transfer whose destination
// does not depend on register contents.
func resolveDest(inst *m68kasm.Inst, instAddr uint64) *uint64 {
	var arg m68kasm.Operand
	switch inst.Op {
	case m68kasm.BRA, m68kasm.BSR, m68kasm.BCC, m68kasm.FBCC, m68kasm.JMP, m68kasm.JSR:
		arg = inst.Args[0]
	case m68kasm.DBCC, m68kasm.FDBCC, m68kasm.CALLM:
		arg = inst.Args[1]
	default:
		return nil
	}

	var pc uint64
	switch arg := arg.(type) {
	case m68kasm.PCDisp:
		if arg.Disp.Indexer != nil || arg.Disp.Indirection != m68kasm.NoIndirection {
			return nil
		}
		pc = uint64(int64(instAddr) + int64(arg.Offset) + int64(arg.Disp.Base))
	case m68kasm.Abs32:
		pc = uint64(arg)
	case m68kasm.Abs16:
		pc = uint64(uint32(int32(arg)))
	default:
		return nil
	}
	pc &= 0xffffffff
	return &pc
}
