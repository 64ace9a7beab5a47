package reportstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

const indexFile = "index.jsonl"

// JSONStore keeps one JSON file per build report under the reports dir.
type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables the <reports>/index.jsonl log of saved reports.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = domain.DefaultReportsDir
	}

	s := &JSONStore{
		dir: filepath.Join(root, filepath.FromSlash(reportsDir)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// Dir returns the directory holding the reports.
func (s *JSONStore) Dir() string {
	return s.dir
}

func (s *JSONStore) SaveReport(report domain.BuildReport) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
		report.StartedAt = ts
	}

	slug := "build"
	if len(report.Sprites) > 0 {
		if v := slugify(report.Sprites[0].Name); v != "" {
			slug = v
		}
	}

	id := s.freeID(fmt.Sprintf("%s_%s", ts.UTC().Format("20060102T150405Z"), slug))
	filename := id + ".json"
	path := filepath.Join(s.dir, filename)
	report.ID = id

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// tmp then rename
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(refOf(report, filename))
	}

	return id, nil
}

// freeID suffixes base until no report file uses it.
func (s *JSONStore) freeID(base string) string {
	id := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(s.dir, id+".json")); errors.Is(err, fs.ErrNotExist) {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func (s *JSONStore) LoadReport(id string) (domain.BuildReport, error) {
	path := filepath.Join(s.dir, filepath.Base(id)+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
			err = fmt.Errorf("report %q: %w", id, domain.ErrNotFound)
		}
		return domain.BuildReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var rep domain.BuildReport
	if err := json.Unmarshal(b, &rep); err != nil {
		return domain.BuildReport{}, &domain.OpError{
			Op:   "reportstore.decode",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return rep, nil
}

func (s *JSONStore) LatestReport() (domain.BuildReport, error) {
	refs, err := s.ListReports()
	if err != nil {
		return domain.BuildReport{}, err
	}
	if len(refs) == 0 {
		return domain.BuildReport{}, &domain.OpError{
			Op:   "reportstore.latest",
			Kind: domain.KindNotFound,
			Path: s.dir,
			Err:  domain.ErrNotFound,
		}
	}
	return s.LoadReport(refs[len(refs)-1].ID)
}

// ListReports returns the saved reports, oldest first. Report ids sort by time.
func (s *JSONStore) ListReports() ([]domain.ReportRef, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.ReportRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "reportstore.list",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	indexed := s.readIndex()

	refs := make([]domain.ReportRef, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		if ref, ok := indexed[id]; ok {
			refs = append(refs, ref)
			continue
		}
		refs = append(refs, domain.ReportRef{ID: id, File: name})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs, nil
}

func (s *JSONStore) appendIndex(ref domain.ReportRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// readIndex returns the index entries by id; a missing or damaged index yields
// what could be read.
func (s *JSONStore) readIndex() map[string]domain.ReportRef {
	out := map[string]domain.ReportRef{}

	f, err := os.Open(filepath.Join(s.dir, indexFile))
	if err != nil {
		return out
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var ref domain.ReportRef
		if json.Unmarshal(sc.Bytes(), &ref) == nil && ref.ID != "" {
			out[ref.ID] = ref
		}
	}
	return out
}

func refOf(report domain.BuildReport, filename string) domain.ReportRef {
	return domain.ReportRef{
		ID:        report.ID,
		File:      filename,
		StartedAt: report.StartedAt,
		Sprites:   len(report.Sprites),
		Failures:  len(report.Failures),
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
