// Command keysize reports the encoded size of keys produced by this
// module's Codecs, alongside two general-purpose compressed-size
// baselines. It's a measurement tool, not part of the codec: an
// order-preserving key must not be compressed, since compression would
// destroy the byte ordering the codec exists to produce. These numbers
// exist purely to show how much headroom that invariant is giving up.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/s2"
	"github.com/orderedkv/ordkey"
	"github.com/pierrec/lz4/v4"
)

// sample describes one type's worth of generated values to measure.
type sample struct {
	label  string
	values [][]byte
}

func main() {
	const n = 500
	samples := []sample{
		genInt64(n),
		genFloat64(n),
		genString(n, 8, 64),
		genStruct(n),
	}

	fmt.Println("=== Encoded key size ===")
	fmt.Println()
	fmt.Printf("%-18s | %8s | %10s | %10s | %10s\n",
		"Type", "Count", "Raw", "S2", "LZ4")
	fmt.Println(strings.Repeat("-", 70))
	for _, smp := range samples {
		printRow(smp)
	}
}

func printRow(smp sample) {
	raw := totalLen(smp.values)
	s2Size := compressedSize(smp.values, s2Compress)
	lz4Size := compressedSize(smp.values, lz4Compress)
	fmt.Printf("%-18s | %8d | %10d | %10d | %10d\n",
		smp.label, len(smp.values), raw, s2Size, lz4Size)
}

func totalLen(values [][]byte) int {
	n := 0
	for _, v := range values {
		n += len(v)
	}
	return n
}

// compressedSize concatenates all encoded values and compresses the
// concatenation as one block, which is the realistic case for a sorted
// key-value store's compressed storage pages.
func compressedSize(values [][]byte, compress func([]byte) ([]byte, error)) int {
	var buf bytes.Buffer
	for _, v := range values {
		buf.Write(v)
	}
	compressed, err := compress(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "compress:", err)
		return -1
	}
	return len(compressed)
}

func s2Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Encode(nil, data), nil
}

func lz4Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// seededRand returns a deterministic byte stream for label, used to
// derive reproducible-but-varied generated values without depending on
// math/rand's global state.
func seededRand(label string) func() uint64 {
	state := xxhash.Sum64String(label)
	return func() uint64 {
		// splitmix64, seeded from the label's hash.
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
}

func genInt64(n int) sample {
	next := seededRand("int64")
	values := make([][]byte, n)
	for i := range values {
		buf, err := ordkey.Append(ordkey.Int64(), nil, int64(next()))
		must(err)
		values[i] = buf
	}
	return sample{"int64", values}
}

func genFloat64(n int) sample {
	next := seededRand("float64")
	codec := ordkey.Float64()
	values := make([][]byte, n)
	for i := range values {
		bits := next()
		buf, err := ordkey.Append(codec, nil, float64frombits(bits))
		must(err)
		values[i] = buf
	}
	return sample{"float64", values}
}

func float64frombits(bits uint64) float64 {
	// Avoid generating NaN so the sample is representative of ordinary
	// values; NaN's encoded size is identical anyway (fixed width).
	v := int64(bits)
	return float64(v) / float64(1<<20)
}

func genString(n, minLen, maxLen int) sample {
	next := seededRand("string")
	codec := ordkey.Terminate(ordkey.String())
	values := make([][]byte, n)
	for i := range values {
		length := minLen + int(next()%uint64(maxLen-minLen+1))
		var sb strings.Builder
		for j := 0; j < length; j++ {
			sb.WriteByte(byte('a' + next()%26))
		}
		buf, err := ordkey.Append(codec, nil, sb.String())
		must(err)
		values[i] = buf
	}
	return sample{"string", values}
}

type keyRecord struct {
	ID   int64
	Name string
}

func genStruct(n int) sample {
	next := seededRand("struct")
	codec := ordkey.StructOf(
		ordkey.FieldOf(ordkey.Field[keyRecord, int64]{
			Name:  "ID",
			Get:   func(r keyRecord) int64 { return r.ID },
			Set:   func(r *keyRecord, v int64) { r.ID = v },
			Codec: ordkey.Int64(),
		}),
		ordkey.FieldOf(ordkey.Field[keyRecord, string]{
			Name:  "Name",
			Get:   func(r keyRecord) string { return r.Name },
			Set:   func(r *keyRecord, v string) { r.Name = v },
			Codec: ordkey.String(),
		}),
	)
	values := make([][]byte, n)
	for i := range values {
		rec := keyRecord{
			ID:   int64(next()),
			Name: fmt.Sprintf("item-%d", next()%10000),
		}
		buf, err := ordkey.Append(codec, nil, rec)
		must(err)
		values[i] = buf
	}
	return sample{"struct(id,name)", values}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
