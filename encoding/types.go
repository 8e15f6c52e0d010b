package encoding

import (
	"fmt"

	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
)

// ValidateTypeCode reports ErrInvalidGeometryType for compressed variants,
// codes whose base is not one of the seven geometry types and codes whose
// dimension component is not one of XY, XYZ, XYM or XYZM.
func ValidateTypeCode(code format.TypeCode) error {
	if code.IsCompressed() {
		return fmt.Errorf("%w: compressed geometry type %d is not supported", errs.ErrInvalidGeometryType, code)
	}
	if !code.IsValidDimension() {
		return fmt.Errorf("%w: type code %d has an invalid dimension", errs.ErrInvalidGeometryType, code)
	}
	if base := code.Base(); base < format.TypePoint || base > format.TypeGeometryCollection {
		return fmt.Errorf("%w: type code %d has an unknown base type %d", errs.ErrInvalidGeometryType, code, base)
	}

	return nil
}

// ValidateGeometry checks that g is an encodable geometry whose dimension is
// one of XY, XYZ, XYM or XYZM. The elements of multi-geometries are checked
// too.
//
// Base() is the type code modulo 1000, so an out-of-range dimension would
// otherwise turn into a different base type.
func ValidateGeometry(g geom.Geometry) error {
	var base format.BaseType
	switch g.(type) {
	case geom.Point:
		base = format.TypePoint
	case geom.LineString:
		base = format.TypeLineString
	case geom.Polygon:
		base = format.TypePolygon
	case geom.MultiPoint:
		base = format.TypeMultiPoint
	case geom.MultiLineString:
		base = format.TypeMultiLineString
	case geom.MultiPolygon:
		base = format.TypeMultiPolygon
	default:
		return fmt.Errorf("%w: cannot encode %T", errs.ErrInvalidGeometryType, g)
	}

	code := g.TypeCode()
	if code.IsCompressed() || code.Base() != base || !code.Dimension().IsValid() {
		return fmt.Errorf("%w: %s has invalid dimension %d",
			errs.ErrInvalidGeometryType, base, int32(code)-int32(base))
	}

	if err := ValidateTypeCode(code); err != nil {
		return err
	}

	switch v := g.(type) {
	case geom.MultiPoint:
		return validateElements(v.Points)
	case geom.MultiLineString:
		return validateElements(v.LineStrings)
	case geom.MultiPolygon:
		return validateElements(v.Polygons)
	}

	return nil
}

func validateElements[T geom.Geometry](elems []T) error {
	for i, elem := range elems {
		if err := ValidateGeometry(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

func validateDimension(base format.BaseType, dim format.Dimension) error {
	if !dim.IsValid() {
		return fmt.Errorf("%w: %s has invalid dimension %d", errs.ErrInvalidGeometryType, base, dim)
	}

	return nil
}

// CheckType fails with ErrInvalidGeometryType when the declared type code is
// unsupported or its base type differs from expected.
func CheckType(actual format.TypeCode, expected format.BaseType) error {
	if err := ValidateTypeCode(actual); err != nil {
		return err
	}
	if actual.Base() != expected {
		return fmt.Errorf("%w: declared %s, expected %s", errs.ErrInvalidGeometryType, actual, expected)
	}

	return nil
}
