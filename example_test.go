package headr_test

import (
	"context"
	"log"
	"os"

	"github.com/aretw0/headr"
	"github.com/aretw0/headr/pkg/adapters/memory"
	"github.com/aretw0/headr/pkg/domain"
	"github.com/aretw0/headr/pkg/runner"
)

// ExampleHead_memory shows the multi-source layout using in-memory sources.
func ExampleHead_memory() {
	opener := memory.NewOpener("", map[string]string{
		"a.txt": "alpha\nbeta\ngamma\n",
		"b.txt": "one\ntwo\n",
	})

	cfg := domain.Config{
		Sources: []string{"a.txt", "b.txt"},
		Mode:    domain.Lines(2),
	}

	err := headr.Head(context.Background(), cfg,
		runner.WithOpener(opener),
		runner.WithOutput(os.Stdout),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Output:
	// ==> a.txt <==
	// alpha
	// beta
	//
	// ==> b.txt <==
	// one
	// two
}

// ExampleHead_bytes shows byte mode on standard input.
func ExampleHead_bytes() {
	opener := memory.NewOpener("hello, world\n", nil)

	err := headr.Head(context.Background(), domain.Config{Sources: []string{"-"}, Mode: domain.Bytes(5)},
		runner.WithOpener(opener),
		runner.WithOutput(os.Stdout),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Output:
	// hello
}
