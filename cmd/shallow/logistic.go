package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/model"
)

var (
	logitIters int
	logitRate  float64
)

func logisticCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logistic",
		Short: "train logistic regression on a separable 2-D toy set",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLogistic()
		},
	}
	cmd.Flags().IntVarP(&logitIters, "iterations", "i", 500, "gradient steps")
	cmd.Flags().Float64VarP(&logitRate, "rate", "r", 0.1, "learning rate")
	return cmd
}

func runLogistic() error {
	// Two linearly separable clusters around (1,1) and (-1,-1).
	x := mat.NewDense(8, 2, []float64{
		1.0, 1.0,
		1.2, 0.8,
		0.7, 1.3,
		1.5, 1.1,
		-1.0, -1.0,
		-0.8, -1.2,
		-1.3, -0.7,
		-1.1, -1.5,
	})
	y := mat.NewVecDense(8, []float64{1, 1, 1, 1, 0, 0, 0, 0})

	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
		Iterations:   logitIters,
		LearningRate: logitRate,
		LogEvery:     100,
		Monitor: func(step int, loss float64) {
			log.Printf("step=%d loss=%.6f", step, loss)
		},
	})
	m.Fit(x, y)

	correct := 0
	for i, label := range m.Predict(model.AddBias(x), 0.5) {
		got := 0.0
		if label {
			got = 1
		}
		if got == y.AtVec(i) {
			correct++
		}
	}
	fmt.Printf("accuracy: %d/%d\n", correct, y.Len())
	return nil
}
