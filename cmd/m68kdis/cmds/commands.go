package cmds

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/derekparker/trie"
	"github.com/go-delve/m68kdis/pkg/config"
	"github.com/go-delve/m68kdis/pkg/listing"
	"github.com/go-delve/m68kdis/pkg/logflags"
	"github.com/go-delve/m68kdis/pkg/m68kasm"
	"github.com/go-delve/m68kdis/pkg/version"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string
	// logDest is the file path or file descriptor where logs should go.
	logDest string

	// origin is the address of the first byte of the input file.
	origin uint64
	// offset is the file offset at which dis starts.
	offset uint64
	// count is the maximum number of instructions dis prints.
	count int
	// verbose adds build details to the version output.
	verbose bool
	// fuzzy makes ops match mnemonics containing the letters of the
	// argument in order rather than by prefix.
	fuzzy bool

	// rootCommand is the root of the command tree.
	rootCommand *cobra.Command

	conf *config.Config
)

const m68kdisCommandLongDesc = `m68kdis is a disassembler for the Motorola 680x0 family.

It decodes the 68000 through 68040 integer instruction sets together with the
68881/68882 floating point coprocessor and the 68040 FPU extensions.

Raw binaries are disassembled with 'm68kdis dis', single instructions can be
decoded from hex with 'm68kdis decode'.`

// New returns an initialized command tree using the given configuration.
func New(c *config.Config) *cobra.Command {
	conf = c

	// Main m68kdis root command.
	rootCommand = &cobra.Command{
		Use:   "m68kdis",
		Short: "m68kdis is a disassembler for Motorola 680x0 machine code.",
		Long:  m68kdisCommandLongDesc,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logflags.Setup(log, logOutput, logDest)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logflags.Close()
		},
		SilenceUsage: true,
	}

	rootCommand.PersistentFlags().BoolVarP(&log, "log", "", false, "Enable logging.")
	rootCommand.PersistentFlags().StringVarP(&logOutput, "log-output", "", "", `Comma separated list of components that should produce debug output (see 'm68kdis help log')`)
	rootCommand.PersistentFlags().StringVarP(&logDest, "log-dest", "", "", "Writes logs to the specified file or file descriptor (see 'm68kdis help log').")

	// 'decode' subcommand.
	decodeCommand := &cobra.Command{
		Use:   "decode hex...",
		Short: "Decode a single instruction.",
		Long: `Decodes the instruction at the start of the given bytes.

The bytes are given in hexadecimal and may be split over several arguments,
for example:

	m68kdis decode 4e75
	m68kdis decode 43 e8 00 08

The instruction is printed in Motorola syntax followed by a dump of the
decoded structure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: decodeCmd,
	}
	rootCommand.AddCommand(decodeCommand)

	// 'dis' subcommand.
	disCommand := &cobra.Command{
		Use:   "dis file",
		Short: "Disassemble a raw binary.",
		Long: `Disassembles a raw binary image.

Each line shows the address, the instruction bytes and the instruction in
Motorola syntax. Words that do not decode are listed as dc.w directives.`,
		Args: cobra.ExactArgs(1),
		RunE: disCmd,
	}
	disCommand.Flags().Uint64Var(&origin, "origin", conf.Origin, "Address of the first byte of the file.")
	disCommand.Flags().Uint64Var(&offset, "offset", 0, "File offset to start disassembling at.")
	disCommand.Flags().IntVarP(&count, "count", "n", conf.MaxInstructions, "Maximum number of instructions to print, 0 for no limit.")
	rootCommand.AddCommand(disCommand)

	// 'at' subcommand.
	atCommand := &cobra.Command{
		Use:   "at file addr...",
		Short: "Decode instructions at the given addresses of a raw binary.",
		Long: `Decodes the instruction found at each of the given addresses of a raw
binary image, following --origin. Addresses are parsed like Go integer
literals, 0x1000 or 4096.`,
		Args: cobra.MinimumNArgs(2),
		RunE: atCmd,
	}
	atCommand.Flags().Uint64Var(&origin, "origin", conf.Origin, "Address of the first byte of the file.")
	rootCommand.AddCommand(atCommand)

	// 'ops' subcommand.
	opsCommand := &cobra.Command{
		Use:   "ops [prefix]",
		Short: "List known mnemonics.",
		Args:  cobra.MaximumNArgs(1),
		Run:   opsCmd,
	}
	opsCommand.Flags().BoolVar(&fuzzy, "fuzzy", false, "Match the letters of the argument in order instead of as a prefix.")
	rootCommand.AddCommand(opsCommand)

	// 'version' subcommand.
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "m68kdis disassembler\n%s\n", version.M68kdisVersion)
			if verbose {
				fmt.Fprintf(out, "Build Details: %s\n", version.BuildInfo())
			}
		},
	}
	versionCommand.Flags().BoolVarP(&verbose, "verbose", "v", false, "print verbose version info")
	rootCommand.AddCommand(versionCommand)

	rootCommand.AddCommand(&cobra.Command{
		Use:   "log",
		Short: "Help about logging flags.",
		Long: `Logging can be enabled by specifying the --log flag and using the
--log-output flag to select which components should produce logs.

The argument of --log-output must be a comma separated list of component
names selected from this list:


	decode		Log the raw input of the decode command
	listing		Log instructions that fail to decode
	config		Log loading and saving of the configuration file

Additionally --log-dest can be used to specify where the logs should be
written.
If the argument is a number it will be interpreted as a file descriptor,
otherwise as a file path.

`,
	})

	applyAliases(rootCommand, conf.Aliases)
	rootCommand.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCommand.DisableAutoGenTag = true

	return rootCommand
}

// applyAliases adds the aliases from the configuration file to the
// subcommands they name.
func applyAliases(root *cobra.Command, aliases map[string][]string) {
	for _, cmd := range root.Commands() {
		if a, ok := aliases[cmd.Name()]; ok {
			cmd.Aliases = append(cmd.Aliases, a...)
		}
	}
}

// dumpConfig prints the decoded structure rather than its Motorola syntax.
var dumpConfig = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, SortKeys: true}

// normalizeFlagName accepts underscores in place of dashes, --log_output
// for --log-output.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func decodeCmd(cmd *cobra.Command, args []string) error {
	src, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(args, " ")), ""))
	if err != nil {
		return errors.Wrap(err, "invalid hex input")
	}
	if logflags.Decode() {
		logflags.DecodeLogger().Debugf("decoding % x", src)
	}

	d, err := m68kasm.Decode(src)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\t; %d bytes\n", d.Inst, d.BytesUsed)
	dumpConfig.Fdump(out, d.Inst)
	return nil
}

func readImage(path string) ([]byte, error) {
	mem, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read image")
	}
	if len(mem) == 0 {
		return nil, errors.Errorf("%s is empty", path)
	}
	return mem, nil
}

func disCmd(cmd *cobra.Command, args []string) error {
	mem, err := readImage(args[0])
	if err != nil {
		return err
	}
	if offset >= uint64(len(mem)) {
		return fmt.Errorf("offset %#x past the end of %s (%d bytes)", offset, args[0], len(mem))
	}

	text := listing.Disassemble(mem[offset:], origin+offset, count)
	lw := newListingWriter(cmd.OutOrStdout())
	for i := range text {
		lw.printInstruction(&text[i])
	}
	return nil
}

func atCmd(cmd *cobra.Command, args []string) error {
	mem, err := readImage(args[0])
	if err != nil {
		return err
	}
	img, err := listing.NewImage(mem, origin, conf.CacheSize)
	if err != nil {
		return err
	}

	lw := newListingWriter(cmd.OutOrStdout())
	for _, arg := range args[1:] {
		addr, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid address %q: %v", arg, err)
		}
		inst, err := img.At(addr)
		if err != nil {
			return err
		}
		lw.printInstruction(&inst)
	}
	return nil
}

func opsCmd(cmd *cobra.Command, args []string) {
	t := trie.New()
	for _, op := range m68kasm.Ops() {
		t.Add(op.String(), op)
	}

	var names []string
	switch {
	case len(args) == 0:
		names = t.Keys()
	case fuzzy:
		names = t.FuzzySearch(strings.ToLower(args[0]))
	default:
		names = t.PrefixSearch(strings.ToLower(args[0]))
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
}

const (
	addrColor  = "\x1b[34m"
	errorColor = "\x1b[31m"
	resetColor = "\x1b[0m"
)

type listingWriter struct {
	out      io.Writer
	color    bool
	grouping int
}

func newListingWriter(out io.Writer) *listingWriter {
	lw := &listingWriter{out: out, grouping: conf.HexGrouping}
	switch conf.Color {
	case config.ColorAlways:
		lw.color = true
	case config.ColorAuto:
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			lw.color = true
		}
	}
	if f, ok := out.(*os.File); ok && lw.color {
		lw.out = colorable.NewColorable(f)
	}
	return lw
}

func (lw *listingWriter) printInstruction(inst *listing.AsmInstruction) {
	addr := fmt.Sprintf("%08x", inst.Loc)
	text := inst.Text(nil)
	if inst.Err != nil {
		text += "\t; " + inst.Err.Error()
	}
	if lw.color {
		addr = addrColor + addr + resetColor
		if inst.Err != nil {
			text = errorColor + text + resetColor
		}
	}
	fmt.Fprintf(lw.out, "%s  %-24s  %s\n", addr, hexBytes(inst.Bytes, lw.grouping), text)
}

// hexBytes writes b in hex, a space after every group bytes.
func hexBytes(b []byte, group int) string {
	if group <= 0 {
		group = len(b)
	}
	var sb strings.Builder
	for i, x := range b {
		if i > 0 && i%group == 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", x)
	}
	return sb.String()
}
