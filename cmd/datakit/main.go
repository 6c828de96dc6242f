// Package main provides the datakit CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/datakit/mnist"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("datakit %s\n", version)
			return
		case "inspect":
			inspect(os.Args[2:])
			return
		}
	}

	fmt.Println("datakit - IDX dataset loading and batching for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  inspect    Summarize an IDX split (samples, batches, label counts)")
}

func inspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	dir := fs.String("dir", ".", "directory containing the IDX split")
	prefix := fs.String("prefix", mnist.TrainPrefix, "split prefix (train or t10k)")
	batchSize := fs.Int("batch", 32, "batch size")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	ds, err := mnist.Open(*dir, *prefix, *batchSize)
	if err != nil {
		log.Fatal(err)
	}
	defer ds.Close()

	fmt.Printf("split:   %s\n", *prefix)
	fmt.Printf("samples: %d\n", ds.Size())
	fmt.Printf("batches: %d (batch size %d)\n", ds.NumBatches(), ds.BatchSize())

	counts := map[int64]int{}
	cur, err := ds.Cursor()
	if err != nil {
		log.Fatal(err)
	}
	for cur.Next() {
		batch, err := cur.Batch()
		if err != nil {
			log.Fatal(err)
		}
		for _, l := range batch.Labels.AsInt64() {
			counts[l]++
		}
	}

	fmt.Println("labels:")
	for l := int64(0); l < 10; l++ {
		if counts[l] > 0 {
			fmt.Printf("  %d: %d\n", l, counts[l])
		}
	}
}
