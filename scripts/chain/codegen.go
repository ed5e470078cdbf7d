package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type chain struct {
	ID     uint64
	Const  string
	Name   string
	Native string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "chain", "chain_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of chains
	chains, err := convertDataToChains(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the chains using a template
	code, err := generateGoCode(filepath.Join("scripts", "chain", "chain_data.tmpl"), chains)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("chain_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToChains(data [][]string) ([]chain, error) {
	chains := make([]chain, 0, len(data))
	seen := map[uint64]bool{}
	for _, rec := range data {
		if len(rec) != 4 {
			return nil, fmt.Errorf("record %q: want 4 fields, got %v", rec, len(rec))
		}
		id, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", rec, err)
		}
		if id == 0 {
			return nil, fmt.Errorf("record %q: chain id 0 is reserved", rec)
		}
		if seen[id] {
			return nil, fmt.Errorf("record %q: duplicate chain id %v", rec, id)
		}
		seen[id] = true
		chains = append(chains, chain{
			ID:     id,
			Const:  rec[1],
			Name:   rec[2],
			Native: rec[3],
		})
	}

	// Sort the chains by id
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].ID < chains[j].ID
	})
	return chains, nil
}

func generateGoCode(filename string, chains []chain) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, chains)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
