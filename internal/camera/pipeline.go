package camera

// Process runs transform, encode and materialize for one picked image.
//
// Resizing renders the image upright first, so the target box applies to the
// displayed dimensions and the result carries no orientation. Without a
// resize or correction the source orientation is kept as an EXIF tag.
func Process(req CaptureRequest, raw RawImage, m *Materializer) (Result, error) {
	img := raw.image()
	if img == nil {
		return Result{}, ErrNoImage
	}
	orientation := raw.Orientation.normalize()

	var err error
	if req.ShouldResize() {
		if orientation != OrientationUp {
			if img, err = CorrectOrientation(img, orientation); err != nil {
				return Result{}, err
			}
			orientation = OrientationUp
		}
		if img, err = Resize(img, req.TargetWidth, req.TargetHeight); err != nil {
			return Result{}, err
		}
	}

	if req.CorrectOrientation {
		if img, err = CorrectOrientation(img, orientation); err != nil {
			return Result{}, err
		}
		orientation = OrientationUp
	}

	artifact, err := EncodeJPEG(img, req.Quality, orientation)
	if err != nil {
		return Result{}, err
	}

	if req.ResultKind == ResultFile {
		return m.File(artifact)
	}
	return m.Inline(artifact), nil
}
