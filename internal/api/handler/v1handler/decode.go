package v1handler

import (
	"io"
	"net/http"

	"cosmic/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodySize bounds request bodies.
const maxBodySize = 1 << 20

// readBody reads a single JSON value. Trailing data after it is rejected.
func readBody(r *http.Request) (*jx.Decoder, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if len(body) > maxBodySize {
		return nil, errors.New("body too large")
	}
	if err := jx.DecodeBytes(body).Validate(); err != nil {
		return nil, errors.Wrap(err, "validate body")
	}

	return jx.DecodeBytes(body), nil
}

// optString reads a string or null. ok is false for null.
func optString(d *jx.Decoder) (v string, ok bool, err error) {
	if d.Next() == jx.Null {
		return "", false, d.Null()
	}
	v, err = d.Str()

	return v, err == nil, err
}

// optInt64 reads an integer or null. ok is false for null.
func optInt64(d *jx.Decoder) (v int64, ok bool, err error) {
	if d.Next() == jx.Null {
		return 0, false, d.Null()
	}
	v, err = d.Int64()

	return v, err == nil, err
}

func decodePlanetInput(d *jx.Decoder) (domain.PlanetInput, error) {
	var in domain.PlanetInput
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "name":
			v, ok, err := optString(d)
			if ok {
				in.Name = &v
			}

			return errors.Wrap(err, "decode name")
		case "distance_from_earth":
			v, ok, err := optInt64(d)
			if ok {
				in.DistanceFromEarth = &v
			}

			return errors.Wrap(err, "decode distance_from_earth")
		case "nearest_star":
			v, ok, err := optString(d)
			if ok {
				in.NearestStar = &v
			}

			return errors.Wrap(err, "decode nearest_star")
		default:
			return d.Skip()
		}
	})

	return in, errors.Wrap(err, "decode planet")
}

// decodePlanetPatch distinguishes a missing key (left unchanged) from null
// (cleared).
func decodePlanetPatch(d *jx.Decoder) (domain.PlanetPatch, error) {
	var patch domain.PlanetPatch
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "name":
			v, ok, err := optString(d)
			if ok {
				patch.Name = &v
			}
			patch.ClearName = !ok

			return errors.Wrap(err, "decode name")
		case "distance_from_earth":
			v, ok, err := optInt64(d)
			if ok {
				patch.DistanceFromEarth = &v
			}
			patch.ClearDistanceFromEarth = !ok

			return errors.Wrap(err, "decode distance_from_earth")
		case "nearest_star":
			v, ok, err := optString(d)
			if ok {
				patch.NearestStar = &v
			}
			patch.ClearNearestStar = !ok

			return errors.Wrap(err, "decode nearest_star")
		default:
			return d.Skip()
		}
	})

	return patch, errors.Wrap(err, "decode planet patch")
}

// decodeScientistInput decodes required fields sent as null as empty so that
// validation reports them as missing.
func decodeScientistInput(d *jx.Decoder) (domain.ScientistInput, error) {
	var in domain.ScientistInput
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "name":
			in.Name, _, err = optString(d)

			return errors.Wrap(err, "decode name")
		case "field_of_study":
			in.FieldOfStudy, _, err = optString(d)

			return errors.Wrap(err, "decode field_of_study")
		default:
			return d.Skip()
		}
	})

	return in, errors.Wrap(err, "decode scientist")
}

func decodeScientistPatch(d *jx.Decoder) (domain.ScientistPatch, error) {
	var patch domain.ScientistPatch
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "name":
			v, _, err := optString(d)
			patch.Name = &v

			return errors.Wrap(err, "decode name")
		case "field_of_study":
			v, _, err := optString(d)
			patch.FieldOfStudy = &v

			return errors.Wrap(err, "decode field_of_study")
		default:
			return d.Skip()
		}
	})

	return patch, errors.Wrap(err, "decode scientist patch")
}

func decodeMissionInput(d *jx.Decoder) (domain.MissionInput, error) {
	var in domain.MissionInput
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "name":
			v, _, err := optString(d)
			in.Name = v

			return errors.Wrap(err, "decode name")
		case "scientist_id":
			v, _, err := optInt64(d)
			in.ScientistID = domain.ScientistID(v)

			return errors.Wrap(err, "decode scientist_id")
		case "planet_id":
			v, _, err := optInt64(d)
			in.PlanetID = domain.PlanetID(v)

			return errors.Wrap(err, "decode planet_id")
		default:
			return d.Skip()
		}
	})

	return in, errors.Wrap(err, "decode mission")
}

func decodeMissionPatch(d *jx.Decoder) (domain.MissionPatch, error) {
	var patch domain.MissionPatch
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "name":
			v, _, err := optString(d)
			patch.Name = &v

			return errors.Wrap(err, "decode name")
		case "scientist_id":
			v, _, err := optInt64(d)
			id := domain.ScientistID(v)
			patch.ScientistID = &id

			return errors.Wrap(err, "decode scientist_id")
		case "planet_id":
			v, _, err := optInt64(d)
			id := domain.PlanetID(v)
			patch.PlanetID = &id

			return errors.Wrap(err, "decode planet_id")
		default:
			return d.Skip()
		}
	})

	return patch, errors.Wrap(err, "decode mission patch")
}
