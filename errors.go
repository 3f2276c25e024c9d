package goparsing

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Entry pairs an Error with the dot path of the input it refers to.
type Entry struct {
	Path  string
	Error Error
}

// Errors is the ordered collection of failures discovered by one parse
// attempt. Entries keep their discovery order. The zero value is ready to use.
type Errors struct {
	entries []Entry
}

// NewErrors returns an empty collection.
func NewErrors() *Errors { return &Errors{} }

// Add appends a single error at path.
func (e *Errors) Add(path string, err Error) *Errors {
	e.entries = append(e.entries, Entry{Path: path, Error: err})
	return e
}

// Merge appends every entry of child with path prepended to its own path.
// Empty segments are dropped, so merging under "" keeps child paths as-is.
func (e *Errors) Merge(path string, child *Errors) *Errors {
	if child == nil {
		return e
	}
	for _, en := range child.entries {
		e.entries = append(e.entries, Entry{Path: JoinPath(path, en.Path), Error: en.Error})
	}
	return e
}

// Entries returns the entries in discovery order. The slice must not be
// modified.
func (e *Errors) Entries() []Entry {
	if e == nil {
		return nil
	}
	return e.entries
}

func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.entries)
}

func (e *Errors) Empty() bool { return e.Len() == 0 }

// String renders one "path: message" line per entry. Entries at the root
// path render the message alone.
func (e *Errors) String() string {
	if e == nil {
		return ""
	}
	lines := make([]string, 0, len(e.entries))
	for _, en := range e.entries {
		if en.Path == "" {
			lines = append(lines, en.Error.Message())
			continue
		}
		lines = append(lines, en.Path+": "+en.Error.Message())
	}
	return strings.Join(lines, "\n")
}

// EntryJSON is the JSON view of one entry.
type EntryJSON struct {
	Path  string    `json:"path"`
	Error ErrorJSON `json:"error"`
}

// JSON returns the JSON-serializable view:
// [{"path":..., "error":{"code":..., "template":..., "variables":{...}}}].
func (e *Errors) JSON() []EntryJSON {
	out := make([]EntryJSON, 0, e.Len())
	for _, en := range e.Entries() {
		out = append(out, EntryJSON{Path: en.Path, Error: en.Error.view()})
	}
	return out
}

func (e *Errors) MarshalJSON() ([]byte, error) { return json.Marshal(e.JSON()) }

// Tree groups rendered messages by successive path segments. Leaves are
// []string in discovery order. Messages of a path that also has children,
// and messages at the root path, are stored under the "" key of that
// path's map.
func (e *Errors) Tree() map[string]any {
	tree := map[string]any{}
	for _, en := range e.Entries() {
		msg := en.Error.Message()
		segs := splitPath(en.Path)
		if len(segs) == 0 {
			appendLeaf(tree, "", msg)
			continue
		}
		node := tree
		for _, seg := range segs[:len(segs)-1] {
			node = branch(node, seg)
		}
		appendLeaf(node, segs[len(segs)-1], msg)
	}
	return tree
}

func branch(node map[string]any, seg string) map[string]any {
	switch cur := node[seg].(type) {
	case map[string]any:
		return cur
	case []string:
		m := map[string]any{"": cur}
		node[seg] = m
		return m
	default:
		m := map[string]any{}
		node[seg] = m
		return m
	}
}

func appendLeaf(node map[string]any, seg, msg string) {
	switch cur := node[seg].(type) {
	case []string:
		node[seg] = append(cur, msg)
	case map[string]any:
		leaf, _ := cur[""].([]string)
		cur[""] = append(leaf, msg)
	default:
		node[seg] = []string{msg}
	}
}

// APIProblem is one invalid parameter in an API problem document.
type APIProblem struct {
	Name    string         `json:"name"`
	Reason  string         `json:"reason"`
	Details map[string]any `json:"details"`
}

// APIProblems renders each entry as {name, reason, details}. Name is the
// bracketed form of the path, reason the rendered message and details the
// raw template under "_template" plus the error variables.
func (e *Errors) APIProblems() []APIProblem {
	out := make([]APIProblem, 0, e.Len())
	for _, en := range e.Entries() {
		details := make(map[string]any, len(en.Error.variables)+1)
		details["_template"] = en.Error.template
		for k, v := range en.Error.variables {
			details[k] = v
		}
		out = append(out, APIProblem{
			Name:    PathToName(en.Path),
			Reason:  en.Error.Message(),
			Details: details,
		})
	}
	return out
}
