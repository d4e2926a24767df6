/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package filter

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// Predictor algorithms. PDF allows a prediction step prior to
// compression, applying TIFF or PNG prediction on decode.
const (
	PredictorNo      = 1
	PredictorTIFF    = 2
	PredictorNone    = 10
	PredictorSub     = 11
	PredictorUp      = 12
	PredictorAverage = 13
	PredictorPaeth   = 14
	PredictorOptimum = 15
)

// PNG row filter type bytes (RFC 2083), one per predicted row when
// Predictor >= 10.
const (
	pngNone    = 0x00
	pngSub     = 0x01
	pngUp      = 0x02
	pngAverage = 0x03
	pngPaeth   = 0x04
)

// NewFlateDecoder returns a decoder for a FlateDecode stage. When
// fp.Predictor is anything other than PredictorNo the zlib output is
// collected in full and predictor-reversed before any bytes are
// returned, since every row but the first depends on the one before
// it.
func NewFlateDecoder(r io.Reader, fp FlateParams) (io.Reader, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "pdfstream: flate: zlib init")
	}
	defer zr.Close()

	if fp.Predictor == PredictorNo {
		var b bytes.Buffer
		if _, err := io.Copy(&b, zr); err != nil {
			return nil, errors.Wrap(err, "pdfstream: flate")
		}
		return &b, nil
	}
	return unpredict(zr, fp)
}

func intMemberOf(i int, list []int) bool {
	for _, v := range list {
		if i == v {
			return true
		}
	}
	return false
}

// unpredict reverses TIFF or PNG prediction applied before Flate
// compression, per 7.4.4.4 of ISO 32000.
func unpredict(r io.Reader, fp FlateParams) (io.Reader, error) {
	if !intMemberOf(fp.Predictor, []int{
		PredictorTIFF, PredictorNone, PredictorSub, PredictorUp,
		PredictorAverage, PredictorPaeth, PredictorOptimum,
	}) {
		return nil, errors.Errorf("pdfstream: flate: undefined Predictor %d", fp.Predictor)
	}

	bytesPerPixel := (fp.BitsPerComponent*fp.Colors + 7) / 8
	rowSize := fp.BitsPerComponent * fp.Colors * fp.Columns / 8
	if fp.Predictor != PredictorTIFF {
		rowSize++
	}
	if rowSize <= 0 {
		return nil, errors.New("pdfstream: flate: degenerate predictor row size")
	}

	cr := make([]byte, rowSize)
	pr := make([]byte, rowSize)
	var out bytes.Buffer

	for {
		n, err := io.ReadFull(r, cr)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, err
		}
		if n == 0 {
			break
		}
		if n != rowSize {
			return nil, errors.Errorf("pdfstream: flate: short predictor row, want %d got %d", rowSize, n)
		}

		d, perr := unpredictRow(pr, cr, fp.Predictor, fp.Colors, bytesPerPixel)
		if perr != nil {
			return nil, perr
		}
		out.Write(d)

		if err == io.EOF {
			break
		}
		pr, cr = cr, pr
	}

	return &out, nil
}

func unpredictRow(pr, cr []byte, predictor, colors, bytesPerPixel int) ([]byte, error) {
	if predictor == PredictorTIFF {
		return applyHorizontalDiff(cr, colors), nil
	}

	cdat := cr[1:]
	pdat := pr[1:]
	f := int(cr[0])

	switch f {
	case pngNone:

	case pngSub:
		for i := bytesPerPixel; i < len(cdat); i++ {
			cdat[i] += cdat[i-bytesPerPixel]
		}

	case pngUp:
		for i, p := range pdat {
			cdat[i] += p
		}

	case pngAverage:
		for i := 0; i < bytesPerPixel; i++ {
			cdat[i] += pdat[i] / 2
		}
		for i := bytesPerPixel; i < len(cdat); i++ {
			cdat[i] += uint8((int(cdat[i-bytesPerPixel]) + int(pdat[i])) / 2)
		}

	case pngPaeth:
		for i := 0; i < len(cdat); i++ {
			var a, c int
			if i >= bytesPerPixel {
				a = int(cdat[i-bytesPerPixel])
				c = int(pdat[i-bytesPerPixel])
			}
			b := int(pdat[i])
			cdat[i] += paeth(a, b, c)
		}

	default:
		return nil, errors.Errorf("pdfstream: flate: unexpected PNG row filter #%02x", f)
	}

	return cdat, nil
}

func applyHorizontalDiff(row []byte, colors int) []byte {
	for i := 1; i < len(row)/colors; i++ {
		for j := 0; j < colors; j++ {
			row[i*colors+j] += row[(i-1)*colors+j]
		}
	}
	return row
}

// paeth is the PNG Paeth predictor (RFC 2083 §6.6): picks whichever
// of a, b, c is closest to p = a+b-c.
func paeth(a, b, c int) byte {
	p := a + b - c
	pa, pb, pc := abs(p-a), abs(p-b), abs(p-c)
	if pa <= pb && pa <= pc {
		return byte(a)
	}
	if pb <= pc {
		return byte(b)
	}
	return byte(c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
