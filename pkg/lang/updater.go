package lang

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/valyala/bytebufferpool"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/logging"
	"github.com/arthur-debert/assetgen/pkg/paths"
	"github.com/arthur-debert/assetgen/pkg/types"
)

// DefaultIndent is the number of spaces used when rewriting lang files
const DefaultIndent = 2

// Options control how lang files are rewritten
type Options struct {
	Collation string
	Indent    int
	FileMode  fs.FileMode
	DryRun    bool
}

// FileUpdate describes the keys added to one lang file
type FileUpdate struct {
	Namespace string   `json:"namespace"`
	Path      string   `json:"path"`
	Added     []string `json:"added"`
}

// Updater appends queued keys to existing lang files
type Updater struct {
	fs     types.FS
	layout paths.Layout
	sorter *Sorter
	indent string
	mode   fs.FileMode
	dryRun bool
	logger zerolog.Logger
}

// NewUpdater creates an updater over an asset tree
func NewUpdater(fsys types.FS, layout paths.Layout, opts Options) (*Updater, error) {
	sorter, err := NewSorter(opts.Collation)
	if err != nil {
		return nil, err
	}
	if opts.Indent < 0 {
		opts.Indent = DefaultIndent
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}

	return &Updater{
		fs:     fsys,
		layout: layout,
		sorter: sorter,
		indent: strings.Repeat(" ", opts.Indent),
		mode:   opts.FileMode,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("lang"),
	}, nil
}

// Apply updates every lang file of every queued namespace
func (u *Updater) Apply(queue *Queue) ([]FileUpdate, error) {
	var updates []FileUpdate

	for _, namespace := range queue.Namespaces() {
		keys := queue.Keys(namespace)
		if len(keys) == 0 {
			continue
		}
		sorted := u.sorter.Sort(keys)

		files, err := u.langFiles(namespace)
		if err != nil {
			return updates, err
		}

		for _, path := range files {
			update, err := u.updateFile(namespace, path, sorted)
			if err != nil {
				return updates, err
			}
			updates = append(updates, update)
		}
	}

	return updates, nil
}

// langFiles lists the regular JSON files in a namespace's lang directory
func (u *Updater) langFiles(namespace string) ([]string, error) {
	dir := u.layout.LangDir(namespace)

	entries, err := u.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			u.logger.Warn().Str("namespace", namespace).Str("dir", dir).Msg("No lang directory, skipping")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to list %s", dir).
			WithDetail("path", dir)
	}

	var files []string
	for _, entry := range entries {
		if strings.ToLower(filepath.Ext(entry.Name())) != paths.JSONExt {
			u.logger.Debug().Str("file", entry.Name()).Msg("Skipping non-JSON lang file")
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// Stat follows symlinks
		info, err := u.fs.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to inspect %s", path).
				WithDetail("path", path)
		}
		if info.IsDir() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func (u *Updater) updateFile(namespace, path string, keys []string) (FileUpdate, error) {
	update := FileUpdate{Namespace: namespace, Path: path}

	data, err := u.fs.ReadFile(path)
	if err != nil {
		return update, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
			WithDetail("path", path)
	}

	entries, err := Decode(data)
	if err != nil {
		return update, errors.Wrapf(err, errors.ErrLangParse, "failed to parse lang file %s", path).
			WithDetail("path", path)
	}

	for _, key := range keys {
		if _, exists := entries.Get(key); exists {
			continue
		}
		entries.Set(key, json.RawMessage(`""`))
		update.Added = append(update.Added, key)
	}

	u.logger.Debug().
		Str("file", path).
		Int("added", len(update.Added)).
		Bool("dry_run", u.dryRun).
		Msg("Updating lang file")

	if u.dryRun {
		return update, nil
	}

	out, err := Encode(entries, u.indent)
	if err != nil {
		return update, errors.Wrapf(err, errors.ErrFileWrite, "failed to encode %s", path).
			WithDetail("path", path)
	}
	if err := u.fs.WriteFile(path, out, u.mode); err != nil {
		return update, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return update, nil
}

// Entries is a lang file's key/value pairs in file order
type Entries = orderedmap.OrderedMap[string, json.RawMessage]

// Decode parses a lang file, keeping key order and raw values
func Decode(data []byte) (*Entries, error) {
	entries := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Encode writes entries as an indented JSON object with no trailing newline.
// An empty indent produces compact output. Keys are written without HTML
// escaping and values are copied as they were read.
func Encode(entries *Entries, indent string) ([]byte, error) {
	compact := bytebufferpool.Get()
	defer bytebufferpool.Put(compact)

	_ = compact.WriteByte('{')
	first := true
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			_ = compact.WriteByte(',')
		}
		first = false

		key, err := encodeString(pair.Key)
		if err != nil {
			return nil, err
		}
		_, _ = compact.Write(key)
		_ = compact.WriteByte(':')
		_, _ = compact.Write(pair.Value)
	}
	_ = compact.WriteByte('}')

	if indent == "" {
		var out bytes.Buffer
		if err := json.Compact(&out, compact.B); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.B, "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(buf.String(), "\n")), nil
}
