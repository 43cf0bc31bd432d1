// quatinfo prints the quaternion, rotation matrix and recovered Euler
// angles for a given Euler input, for eyeballing conversions.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quatview/internal/rotmath"
)

func main() {
	eulerStr := flag.String("euler", "0,0,0", "Euler angles in degrees, comma separated")
	orderStr := flag.String("order", "XYZ", "Rotation order: XYZ, XZY, YXZ, YZX, ZXY or ZYX")
	flag.Parse()

	order, err := rotmath.ParseOrder(*orderStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	parts := strings.Split(*eulerStr, ",")
	if len(parts) != 3 {
		fmt.Fprintf(os.Stderr, "Error: -euler wants 3 comma-separated angles, got %q\n", *eulerStr)
		os.Exit(1)
	}
	var e rotmath.Vec3[float64]
	for i, p := range parts {
		deg, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: angle %d: %v\n", i, err)
			os.Exit(1)
		}
		e[i] = rotmath.Deg2Rad(deg)
	}

	q := rotmath.FromEuler(e, order)
	fmt.Printf("Euler (%s): %s°\n", order, *eulerStr)
	fmt.Printf("Quaternion: x=%+.9f y=%+.9f z=%+.9f w=%+.9f\n", q.X, q.Y, q.Z, q.W)
	fmt.Printf("Length:     %.12f\n", q.Length())
	fmt.Printf("Angle from identity: %.4f°\n", rotmath.Identity[float64]().AngleTo(q))

	m := q.ToMat4()
	fmt.Println("Matrix:")
	for r := 0; r < 4; r++ {
		fmt.Printf("  [%+.6f %+.6f %+.6f %+.6f]\n", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}

	back := q.ToEuler(order)
	fmt.Printf("Recovered Euler (%s): %.4f°, %.4f°, %.4f°\n", order,
		rotmath.Rad2Deg(back[0]), rotmath.Rad2Deg(back[1]), rotmath.Rad2Deg(back[2]))
}
