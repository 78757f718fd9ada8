package scanner_test

import (
	"path/filepath"
	"testing/fstest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/atomic-builder/internal/scanner"
)

var _ = Describe("Scanner", func() {
	var s *scanner.FileScanner
	atomics := filepath.Join("..", "..", "testdata", "atomics")

	BeforeEach(func() {
		s = scanner.NewScanner(true)
	})

	It("should find yaml files in testdata", func() {
		files, err := s.Scan(atomics, []string{"*.yaml", "*.yml"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(4))
	})

	It("should return sorted file paths", func() {
		files, err := s.Scan(atomics, []string{"*.yaml"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(3))
		// Sorted alphabetically
		Expect(filepath.Base(files[0])).To(Equal("T1082.yaml"))
		Expect(filepath.Base(files[1])).To(Equal("broken.yaml"))
		Expect(filepath.Base(files[2])).To(Equal("list.yaml"))
	})

	It("should respect exclude patterns", func() {
		files, err := s.Scan(atomics, []string{"*.yaml", "*.yml"}, []string{"broken.yaml", "nested/**"})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(2))
	})

	It("should handle non-recursive mode", func() {
		s = scanner.NewScanner(false)
		files, err := s.Scan(atomics, []string{"*.yml"}, nil)
		Expect(err).ToNot(HaveOccurred())
		// Non-recursive: the only .yml file is in a subdirectory
		Expect(files).To(BeEmpty())
	})

	It("should return error for nonexistent directory", func() {
		_, err := s.Scan("nonexistent_dir", []string{"*.yaml"}, nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("on an in-memory file system", func() {
		fsys := fstest.MapFS{
			"atomics/T1003/T1003.yaml":        {Data: []byte("[]")},
			"atomics/T1003/src/payload.yaml":  {Data: []byte("[]")},
			"atomics/T1059/T1059.yaml":        {Data: []byte("[]")},
			"atomics/T1059/README.md":         {Data: []byte("#")},
			"atomics/vendor/lib/x.yaml":       {Data: []byte("[]")},
			"atomics/.git/config.yaml":        {Data: []byte("[]")},
			"atomics/Indexes/index.yaml":      {Data: []byte("[]")},
			"atomics/T1059/docs/extra.md":     {Data: []byte("#")},
			"atomics/T1059/docs/notes.txt":    {Data: []byte("")},
			"atomics/T1059/docs/deep/x.yml":   {Data: []byte("[]")},
			"atomics/T1059/docs/deep/y.yaml~": {Data: []byte("")},
		}

		BeforeEach(func() {
			s = scanner.NewFSScanner(fsys, true)
		})

		It("should match doublestar excludes at any depth", func() {
			files, err := s.Scan("atomics", []string{"*.yaml", "*.yml"}, []string{"vendor/**", ".git/**", "**/src/**"})
			Expect(err).ToNot(HaveOccurred())
			Expect(files).To(Equal([]string{
				filepath.Join("atomics", "Indexes", "index.yaml"),
				filepath.Join("atomics", "T1003", "T1003.yaml"),
				filepath.Join("atomics", "T1059", "T1059.yaml"),
				filepath.Join("atomics", "T1059", "docs", "deep", "x.yml"),
			}))
		})

		It("should match path patterns relative to the root", func() {
			files, err := s.Scan("atomics", []string{"T1059/**/*.md"}, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(files).To(ConsistOf(
				filepath.Join("atomics", "T1059", "README.md"),
				filepath.Join("atomics", "T1059", "docs", "extra.md"),
			))
		})
	})
})
