package samples

import (
	"embed"
	"fmt"
	"strings"

	"github.com/frherrer/atomic-builder/internal/codec"
	"github.com/frherrer/atomic-builder/internal/domain"
)

//go:embed data/*.yaml
var files embed.FS

// Names lists the bundled samples from simplest to most involved.
var Names = []string{"basic", "moderate", "complex"}

// Raw returns the YAML of the named sample.
func Raw(name string) ([]byte, error) {
	data, err := files.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, domain.NewError("load", name, 0,
			fmt.Sprintf("unknown sample (available: %s)", strings.Join(Names, ", ")), err)
	}
	return data, nil
}

// Load returns the named sample as an editable Document.
func Load(name string) (domain.Document, error) {
	data, err := Raw(name)
	if err != nil {
		return domain.Document{}, err
	}
	src, err := codec.Decode(data)
	if err != nil {
		return domain.Document{}, err
	}
	src.File = name
	return src.Load(0)
}
