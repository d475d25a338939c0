package writer

import (
	"fmt"
	"math"
	"regexp"

	"github.com/dlis-toolkit/dliswriter/attribute"
	"github.com/dlis-toolkit/dliswriter/datasource"
	"github.com/dlis-toolkit/dliswriter/eflr"
	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/iflr"
	"github.com/dlis-toolkit/dliswriter/internal/pool"
	"github.com/dlis-toolkit/dliswriter/rcode"
	"github.com/dlis-toolkit/dliswriter/segment"
	"github.com/dlis-toolkit/dliswriter/visible"
)

// spacingUniformTolerance bounds how far DetectSpacing's residual may
// diverge (relative to the fitted spacing itself) before auto-detection
// gives up rather than recording a misleading constant spacing.
const spacingUniformTolerance = 1e-6

// nameCharset is spec §6.3's high_compatibility_mode item-name
// restriction.
var nameCharset = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// FrameStream pairs a Frame with the data source its rows are read from
// (spec §4.8 step 4: "Frame Data streams ... rows yielded lazily from
// the data source in caller-chosen chunk sizes").
type FrameStream struct {
	Frame  *eflr.Frame
	Source datasource.Source
}

// NoFormatRecord is one NoFormat Data IFLR to emit (spec §4.4).
type NoFormatRecord struct {
	Item *eflr.Item
	Data []byte
}

// LogicalFile is one RP66 V1 logical file's complete model (spec §4.8):
// exactly one File Header, at least one Origin, any number of other
// EFLR Sets in the order they should be emitted, any NoFormat records,
// and the Frame Data streams that produce the file's IFLRs.
type LogicalFile struct {
	FileHeader *eflr.Set
	Origins    *eflr.Set
	Sets       []*eflr.Set
	NoFormat   []*NoFormatRecord
	Frames     []*FrameStream
}

// validate checks spec §4.8 step 1's preconditions before any byte is
// written.
func (lf *LogicalFile) validate() error {
	if lf.FileHeader == nil || len(lf.FileHeader.Items()) == 0 {
		return errs.ErrMissingFileHeader
	}
	if lf.Origins == nil || len(lf.Origins.Items()) == 0 {
		return errs.ErrMissingOrigin
	}
	if len(lf.Frames) == 0 {
		return errs.ErrMissingFrame
	}

	for _, fs := range lf.Frames {
		if len(fs.Frame.Channels) == 0 {
			return errs.ErrFrameNoChannels
		}

		dtypes := make(map[string]datasource.ColumnSpec, len(fs.Source.DType()))
		for _, spec := range fs.Source.DType() {
			dtypes[spec.Name] = spec
		}

		for _, ch := range fs.Frame.Channels {
			spec, ok := dtypes[ch.DatasetName]
			if !ok {
				return fmt.Errorf("%w: channel %q has no column %q in the data source", errs.ErrUnresolvedChannel, ch.Name, ch.DatasetName)
			}
			if spec.Code != ch.Code() {
				return fmt.Errorf("%w: channel %q declares %v but data source column %q is %v", errs.ErrUnresolvedChannel, ch.Name, ch.Code(), ch.DatasetName, spec.Code)
			}
			if spec.ElementCount() != ch.ElementCount() {
				return fmt.Errorf("%w: channel %q expects %d values, data source column %q has %d", errs.ErrUnresolvedChannel, ch.Name, ch.ElementCount(), ch.DatasetName, spec.ElementCount())
			}
		}
	}

	if err := lf.validateReferences(); err != nil {
		return err
	}

	return nil
}

// allItems returns every Item this logical file will write, in no
// particular order.
func (lf *LogicalFile) allItems() []*eflr.Item {
	items := append([]*eflr.Item{}, lf.FileHeader.Items()...)
	items = append(items, lf.Origins.Items()...)
	for _, s := range lf.Sets {
		items = append(items, s.Items()...)
	}
	for _, rec := range lf.NoFormat {
		items = append(items, rec.Item)
	}
	for _, fs := range lf.Frames {
		items = append(items, fs.Frame.Item)
	}
	return items
}

// validateReferences implements spec §7's "dangling reference"
// ValidationError: every OBNAME-valued attribute (Channel references,
// Axis references, and so on) must name an item that is actually part of
// this logical file.
func (lf *LogicalFile) validateReferences() error {
	items := lf.allItems()

	known := make(map[string]bool, len(items))
	for _, it := range items {
		known[it.Name] = true
	}

	for _, it := range items {
		for label, attr := range it.Attributes() {
			for _, name := range referencedNames(attr) {
				if !known[name] {
					return fmt.Errorf("%w: %q attribute %q references unknown item %q", errs.ErrDanglingReference, it.Name, label, name)
				}
			}
		}
	}

	return nil
}

// referencedNames extracts the item name(s) an OBNAME/OBJREF-coded
// attribute points at, or nil for any other attribute kind.
func referencedNames(attr *attribute.Attribute) []string {
	switch v := attr.Value.(type) {
	case rcode.ObjectName:
		return []string{v.Name}
	case []rcode.ObjectName:
		names := make([]string, len(v))
		for i, o := range v {
			names[i] = o.Name
		}
		return names
	case rcode.ObjectReference:
		return []string{v.Object.Name}
	case []rcode.ObjectReference:
		names := make([]string, len(v))
		for i, o := range v {
			names[i] = o.Object.Name
		}
		return names
	default:
		return nil
	}
}

// defaultOriginReference is the first Origin's origin_reference (spec
// §4.8 step 2: "the file_set_number of the first Origin").
func (lf *LogicalFile) defaultOriginReference() uint32 {
	return lf.Origins.Items()[0].OriginReference
}

// resolveOriginReferences assigns ref to every item whose
// origin_reference is the Go zero value, the sentinel this port uses
// for "unset" (spec §4.8 step 2: "any Item with origin_reference = None
// inherits this value at emission time" — Go has no nilable uint32, so
// zero stands in for None; see SPEC_FULL.md's Open Question decisions).
func (lf *LogicalFile) resolveOriginReferences(ref uint32) {
	resolveSet(lf.FileHeader, ref)
	resolveSet(lf.Origins, ref)
	for _, s := range lf.Sets {
		resolveSet(s, ref)
	}
	for _, rec := range lf.NoFormat {
		if rec.Item.OriginReference == 0 {
			rec.Item.OriginReference = ref
		}
	}
	for _, fs := range lf.Frames {
		if fs.Frame.OriginReference == 0 {
			fs.Frame.OriginReference = ref
		}
	}
}

// validateHighCompatibility enforces spec §6.3's high_compatibility_mode
// extras this implementation can check purely from the model: every
// item name matches [A-Z0-9_-]+, every attribute's units are one of
// rcode.ValidUnits, and every Channel item is referenced by
// at least one Frame (the default, non-strict mode would only warn;
// there is no warning channel in this port, so non-strict mode skips
// the check entirely rather than silently failing to warn).
func (lf *LogicalFile) validateHighCompatibility() error {
	referenced := make(map[string]bool)
	for _, fs := range lf.Frames {
		for _, ch := range fs.Frame.Channels {
			referenced[ch.ObjectName().Name] = true
		}
	}

	checkNames := func(items []*eflr.Item) error {
		for _, it := range items {
			if !nameCharset.MatchString(it.Name) {
				return fmt.Errorf("%w: %q", errs.ErrInvalidName, it.Name)
			}
			for _, a := range it.Attributes() {
				if err := rcode.ValidateUnits(a.Units, true); err != nil {
					return err
				}
			}
			if it.Kind == eflr.KindChannel && !referenced[it.Name] {
				return fmt.Errorf("%w: channel %q is not referenced by any frame", errs.ErrChannelNotInFrame, it.Name)
			}
		}
		return nil
	}

	if err := checkNames(lf.FileHeader.Items()); err != nil {
		return err
	}
	if err := checkNames(lf.Origins.Items()); err != nil {
		return err
	}
	for _, s := range lf.Sets {
		if err := checkNames(s.Items()); err != nil {
			return err
		}
	}
	for _, rec := range lf.NoFormat {
		if err := checkNames([]*eflr.Item{rec.Item}); err != nil {
			return err
		}
	}
	for _, fs := range lf.Frames {
		if err := checkNames([]*eflr.Item{fs.Frame.Item}); err != nil {
			return err
		}
	}

	return nil
}

func resolveSet(s *eflr.Set, ref uint32) {
	if s == nil {
		return
	}
	for _, item := range s.Items() {
		if item.OriginReference == 0 {
			item.OriginReference = ref
		}
	}
}

// detectFrameSpacing auto-populates each frame's INDEX-MIN/INDEX-MAX
// (always) and SPACING (only when the index channel's first chunkSize
// samples are evenly spaced) from the frame's index channel, unless the
// caller already set the attribute explicitly (SPEC_FULL.md SUPPLEMENTED
// FEATURES: "Frame spacing/index-range auto-detection"). Non-standard
// index frames and non-numeric index channels are left untouched.
func (lf *LogicalFile) detectFrameSpacing(chunkSize int) error {
	for _, fs := range lf.Frames {
		frame := fs.Frame

		if indexType, ok := frame.Attribute("INDEX-TYPE"); ok {
			if s, _ := indexType.Value.(string); s == eflr.IndexNonStandard {
				continue
			}
		}

		col, err := fs.Source.Column(frame.Channels[0].DatasetName)
		if err != nil {
			return err
		}

		n := len(col)
		if chunkSize > 0 && chunkSize < n {
			n = chunkSize
		}
		if n < 2 {
			continue
		}

		samples := make([]float64, n)
		for i := 0; i < n; i++ {
			v, ok := toFloat64(col[i])
			if !ok {
				samples = nil
				break
			}
			samples[i] = v
		}
		if samples == nil {
			continue
		}

		if _, has := frame.Attribute("INDEX-MIN"); !has {
			min, max := samples[0], samples[0]
			for _, v := range samples {
				min = math.Min(min, v)
				max = math.Max(max, v)
			}
			if err := frame.SetIndexRange(min, max); err != nil {
				return err
			}
		}

		if _, has := frame.Attribute("SPACING"); !has {
			spacing, maxResidual, err := eflr.DetectSpacing(samples)
			if err == nil && maxResidual <= spacingUniformTolerance*math.Max(math.Abs(spacing), 1) {
				if err := frame.SetSpacing(spacing, ""); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// toFloat64 converts a data source cell to float64 if it holds a numeric
// Go type, reporting false for anything else (strings, []byte, and so on).
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Writer drives the file-level pipeline spec §4.8 describes: validate,
// resolve default origin_reference, write the SUL once, then emit each
// LogicalFile's records as segmented, VR-packed bytes to a buffered
// Output.
//
// Grounded on mebo.go's thin top-level-wrapper idiom: Writer composes
// segment.Cut, visible.Packer/StorageUnitLabel, and Output rather than
// reimplementing any of their logic.
type Writer struct {
	cfg        *Config
	out        *Output
	wroteLabel bool
}

// New creates a Writer for path, applying opts over spec §6.3's
// defaults.
func New(path string, opts ...Option) (*Writer, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Writer{cfg: cfg, out: NewOutput(path, cfg.OutputChunkSize)}, nil
}

// WriteLogicalFile validates lf, resolves its default origin_reference,
// and emits its records in spec §4.8 step 4's order. It may be called
// more than once per Writer to concatenate several logical files into
// one physical file; the SUL is written only before the first one.
func (w *Writer) WriteLogicalFile(lf *LogicalFile) error {
	if err := lf.validate(); err != nil {
		return err
	}
	if w.cfg.HighCompatibilityMode {
		if err := lf.validateHighCompatibility(); err != nil {
			return err
		}
	}
	lf.resolveOriginReferences(lf.defaultOriginReference())

	if err := lf.detectFrameSpacing(w.cfg.InputChunkSize); err != nil {
		return err
	}

	if !w.wroteLabel {
		if err := w.writeLabel(); err != nil {
			return err
		}
		w.wroteLabel = true
	}

	budget, err := visible.SegmentBudget(w.cfg.VisibleRecordLength)
	if err != nil {
		return err
	}
	packer, err := visible.NewPacker(w.cfg.VisibleRecordLength)
	if err != nil {
		return err
	}

	if err := w.emitSet(packer, budget, lf.FileHeader); err != nil {
		return err
	}
	if err := w.emitSet(packer, budget, lf.Origins); err != nil {
		return err
	}
	for _, s := range lf.Sets {
		if err := w.emitSet(packer, budget, s); err != nil {
			return err
		}
	}
	for _, rec := range lf.NoFormat {
		if err := w.emitNoFormat(packer, budget, rec); err != nil {
			return err
		}
	}
	for _, fs := range lf.Frames {
		if err := w.emitFrameData(packer, budget, fs); err != nil {
			return err
		}
	}

	if flushed := packer.Flush(); flushed != nil {
		if err := w.out.Write(flushed); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes the buffered output and closes the underlying file
// (spec §4.8 step 6, §4.7: "a final explicit flush is required on
// shutdown").
func (w *Writer) Close() error {
	return w.out.Close()
}

func (w *Writer) writeLabel() error {
	sul, err := visible.NewStorageUnitLabel("Default Storage Set", 1, w.cfg.VisibleRecordLength)
	if err != nil {
		return err
	}

	rb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(rb)

	buf, err := sul.Encode(rb.B)
	if err != nil {
		return err
	}

	return w.out.Write(buf)
}

func (w *Writer) emitSet(packer *visible.Packer, budget int, s *eflr.Set) error {
	rb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(rb)

	body, err := s.Encode(rb.B)
	if err != nil {
		return err
	}

	return w.cutAndPack(packer, budget, body, s.Type.LogicalRecordType(), true)
}

func (w *Writer) emitNoFormat(packer *visible.Packer, budget int, rec *NoFormatRecord) error {
	rb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(rb)

	body, err := iflr.EncodeNoFormat(rb.B, rec.Item, rec.Data)
	if err != nil {
		return err
	}

	return w.cutAndPack(packer, budget, body, iflr.RecordTypeNoFormat, false)
}

func (w *Writer) emitFrameData(packer *visible.Packer, budget int, fs *FrameStream) error {
	counter := iflr.NewFrameCounter()

	for slab := range fs.Source.ChunkedRows(w.cfg.InputChunkSize) {
		for _, row := range slab {
			rb := pool.GetRecordBuffer()

			body, err := iflr.EncodeFrameData(rb.B, fs.Frame, counter.Next(), row)
			if err != nil {
				pool.PutRecordBuffer(rb)
				return err
			}

			err = w.cutAndPack(packer, budget, body, iflr.RecordTypeFrameData, false)
			pool.PutRecordBuffer(rb)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *Writer) cutAndPack(packer *visible.Packer, budget int, body []byte, recordType uint8, isEFLR bool) error {
	segs, err := segment.Cut(body, budget, recordType, isEFLR)
	if err != nil {
		return err
	}

	for _, s := range segs {
		if flushed := packer.Add(s); flushed != nil {
			if err := w.out.Write(flushed); err != nil {
				return err
			}
		}
	}

	return nil
}
