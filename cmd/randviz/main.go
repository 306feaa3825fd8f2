package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/prng"
	"github.com/wippyai/prng/alg"
	"github.com/wippyai/prng/buffer"
	"github.com/wippyai/prng/crush"
)

// algorithms maps a CLI name to a constructor. The second seed is only
// meaningful for multi-word generators (pcg32 stream, xorshift128p and
// collatzweyl second word); the rest ignore it.
var algorithms = map[string]func(seed, seed2 uint64) prng.Source{
	"chacha":       func(s, _ uint64) prng.Source { return alg.NewChaCha([8]uint32{uint32(s), uint32(s >> 32)}, [3]uint32{}, 0) },
	"collatzweyl":  func(s, s2 uint64) prng.Source { return alg.NewCollatzWeyl64State(s2, s|1) },
	"fishman":      func(s, _ uint64) prng.Source { return alg.NewFishman(uint32(s)) },
	"lcg8":         func(s, _ uint64) prng.Source { return alg.NewLecuyer8(uint8(s)) },
	"lcg16":        func(s, _ uint64) prng.Source { return alg.NewLecuyer16(uint16(s)) },
	"lfg8":         func(s, _ uint64) prng.Source { return alg.NewFibLFG8(uint32(s)) },
	"lfsr16":       func(s, _ uint64) prng.Source { return alg.NewFibLFSR16(uint16(s)) },
	"minstd":       func(s, _ uint64) prng.Source { return alg.NewMINSTD(s) },
	"minstd88":     func(s, _ uint64) prng.Source { return alg.NewMINSTD88(s) },
	"mt19937":      func(s, _ uint64) prng.Source { return alg.NewMTwister(uint32(s)) },
	"pcg32":        func(s, s2 uint64) prng.Source { return alg.NewPCG32(s, s2) },
	"randu":        func(s, _ uint64) prng.Source { return alg.NewRANDU(uint32(s)) },
	"ranf":         func(s, _ uint64) prng.Source { return alg.NewRANF(s) },
	"splitmix64":   func(s, _ uint64) prng.Source { return alg.NewSplitMix64(s) },
	"vb6":          func(s, _ uint64) prng.Source { return alg.NewVisualBasic6(uint32(s)) },
	"wichhill":     func(s, _ uint64) prng.Source { return alg.NewWichHill(uint32(s)) },
	"xorshift32":   func(s, _ uint64) prng.Source { return alg.NewXorShift32(uint32(s)) },
	"xorshift64":   func(s, _ uint64) prng.Source { return alg.NewXorShift64(s) },
	"xorshift128p": func(s, s2 uint64) prng.Source { return alg.NewXorShift128p([2]uint64{s, s2}) },
	"xoshiro256ss": func(s, s2 uint64) prng.Source { return alg.NewXoshiro256ss([4]uint64{s, s2, s ^ 0x9e3779b97f4a7c15, s2 ^ 0x6a09e667f3bcc909}) },
}

func main() {
	var (
		algName     = flag.String("alg", "xorshift64", "Algorithm to draw from (see -list)")
		seed        = flag.Uint64("seed", 1, "Primary seed")
		seed2       = flag.Uint64("seed2", 2, "Secondary seed (stream/state word, where the algorithm has one)")
		count       = flag.Int("n", 10, "Number of values to print")
		format      = flag.String("format", "u64", "Output format: u64, u32, f64, hex, bits")
		bufferCap   = flag.Int("buffer", 0, "Prefetch values through a buffer of this capacity")
		crushRounds = flag.Int("crush", 0, "Whiten output by hashing this many draws per value")
		list        = flag.Bool("list", false, "List algorithms and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log wrapper activity to stderr")
	)
	flag.Parse()

	if *list {
		names := make([]string, 0, len(algorithms))
		for name := range algorithms {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		buffer.SetLogger(l)
	}

	if *interactive {
		if err := runInteractive(*seed, *seed2); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*algName, *seed, *seed2, *count, *format, *bufferCap, *crushRounds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSource(algName string, seed, seed2 uint64, bufferCap, crushRounds int) (prng.Source, error) {
	construct, ok := algorithms[algName]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q (use -list)", algName)
	}
	src := construct(seed, seed2)

	if crushRounds > 0 {
		src = crush.New(src, crushRounds)
	}
	if bufferCap > 0 {
		src = buffer.NewSource64(src, bufferCap)
	}
	return src, nil
}

func run(algName string, seed, seed2 uint64, count int, format string, bufferCap, crushRounds int) error {
	src, err := newSource(algName, seed, seed2, bufferCap, crushRounds)
	if err != nil {
		return err
	}
	r := prng.New(src)

	switch format {
	case "u64":
		for i := 0; i < count; i++ {
			fmt.Println(r.Uint64())
		}
	case "u32":
		for i := 0; i < count; i++ {
			fmt.Println(r.Uint32())
		}
	case "f64":
		for i := 0; i < count; i++ {
			fmt.Println(r.Float64())
		}
	case "hex":
		for i := 0; i < count; i++ {
			fmt.Printf("%016x\n", r.Uint64())
		}
	case "bits":
		return renderBits(r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// renderBits draws a noise bitmap sized to the terminal. Structure that
// survives at a glance (stripes, lattices, repetition) is a generator
// defect made visible; RANDU and the LFSRs are the classic offenders.
func renderBits(r *prng.Rand) error {
	width, height := 64, 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		if w > 1 {
			width = w - 1
		}
		if h > 2 {
			height = h - 2
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if r.Bool() {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	return nil
}
