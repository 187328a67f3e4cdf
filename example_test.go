package spark_test

import (
	"fmt"

	spark "github.com/Colahall/libspark"
	"github.com/Colahall/libspark/pkg/block"
)

func ExampleVersion() {
	fmt.Println(spark.Version())
	// Output: 1.0.0
}

// Validation rejects a block whose input buffer has no storage, and the
// error code reads as a human-friendly string.
func Example_validation() {
	out := make([]float32, 2*256)

	blk := block.New(
		block.NewBuffer[float32](nil, 2, 256, block.LayoutPlanar),
		block.NewBuffer(out, 2, 256, block.LayoutPlanar),
	)

	required, _ := block.Compose(block.FormatF32, block.LayoutPlanar, block.KindProcess)
	if err := block.Validate(blk, required); err != nil {
		fmt.Println(err)
	}
	// Output: invalid input buffer
}
