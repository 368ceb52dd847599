// SPDX-License-Identifier: MIT

package pca_test

import (
	"fmt"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/matrix"
	"github.com/katalvlaran/orgstat/pca"
)

// ExampleAnalyze projects three perfectly correlated records onto one axis.
func ExampleAnalyze() {
	vs := []dataset.Variable{{Key: "x"}, {Key: "y"}}
	records := []dataset.Record{
		{ID: "a", Values: map[string]float64{"x": 1, "y": 2}},
		{ID: "b", Values: map[string]float64{"x": 2, "y": 4}},
		{ID: "c", Values: map[string]float64{"x": 3, "y": 6}},
	}

	res, err := pca.Analyze(records, vs, pca.WithComponents(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("λ1=%.3f v1=[%.3f %.3f] explained=%.1f%%\n",
		res.Pairs[0].Value, res.Pairs[0].Vector[0], res.Pairs[0].Vector[1], res.Explained[0])
	for _, p := range res.Points {
		fmt.Printf("%s %.3f\n", p.Record.ID, p.PC1())
	}
	// Output:
	// λ1=3.000 v1=[0.707 0.707] explained=100.0%
	// a -1.732
	// b 0.000
	// c 1.732
}

// ExampleTopK extracts both eigenpairs of a 2×2 symmetric matrix.
func ExampleTopK() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})

	pairs, err := pca.TopK(m, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range pairs {
		fmt.Printf("%.3f %.3f\n", p.Value, p.Vector)
	}
	// Output:
	// 3.000 [0.707 0.707]
	// 1.000 [0.707 -0.707]
}
