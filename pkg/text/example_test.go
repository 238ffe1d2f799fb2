package text_test

import (
	"fmt"

	"github.com/Ananya54321/handwritten/pkg/text"
)

func ExampleNormalize() {
	fmt.Println(text.Normalize("Grüße,\r\nwelt!\t"))
	// Output:
	// Grusse,
	// welt!
}
