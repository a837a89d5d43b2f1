package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/activation"
	"github.com/shallow-ml/shallow/model"
)

var (
	xorNeurons int
	xorEpochs  int
	xorRate    float64
	xorSeed    uint64
)

func xorCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xor",
		Short: "train the one-hidden-layer network on the XOR dataset",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runXOR()
		},
	}
	cmd.Flags().IntVarP(&xorNeurons, "neurons", "n", 4, "hidden layer size")
	cmd.Flags().IntVarP(&xorEpochs, "epochs", "e", 5000, "training epochs")
	cmd.Flags().Float64VarP(&xorRate, "rate", "r", 0.5, "learning rate")
	cmd.Flags().Uint64VarP(&xorSeed, "seed", "s", 1, "weight init seed (0 = unseeded)")
	return cmd
}

func runXOR() error {
	x := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	// One-hot targets: class 0 for equal inputs, class 1 for differing ones.
	y := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		0, 1,
		1, 0,
	})

	net, err := model.NewNetwork(model.NetworkConfig{
		HiddenUnits:      xorNeurons,
		BatchSize:        5,
		HiddenActivation: activation.Sigmoid,
		OutActivation:    activation.Sigmoid,
		Epochs:           xorEpochs,
		LearningRate:     xorRate,
		LogEvery:         100,
		Monitor: func(epoch int, loss float64) {
			log.Printf("epoch=%d loss=%.6f", epoch, loss)
		},
		Seed: xorSeed,
	})
	if err != nil {
		return err
	}

	net.Fit(x, y)

	correct := 0
	want := []int{0, 1, 1, 0}
	for i, p := range net.Predict(model.AddBias(x)) {
		fmt.Printf("(%g, %g) -> class %d (p=%.4f)\n", x.At(i, 0), x.At(i, 1), p.Class, p.Prob)
		if p.Class == want[i] {
			correct++
		}
	}
	fmt.Printf("accuracy: %d/4\n", correct)
	return nil
}
