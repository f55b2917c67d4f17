// Package factory provides small generic tables used to bind names to
// constructors.
//
// Table is an append-only map: the first value inserted for a key wins and
// later inserts fail with ErrDuplicate. Registry builds on Table to
// instantiate modules from configuration, where a module is defined by a type
// string and a map of raw settings that factories decode into typed structs.
//
// Example usage:
//
//	reg := factory.NewRegistry[io.Reader]()
//	reg.Register("file", func(conf map[string]any) (io.Reader, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return os.Open(c.Path)
//	})
//	r, err := reg.Create(factory.ModuleConfig{Type: "file", Conf: map[string]any{"path": "foo"}})
package factory
