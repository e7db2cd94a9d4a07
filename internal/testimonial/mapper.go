package testimonial

// dateArg returns the stored value for an optional date. nil lets the database default apply.
func dateArg(d *Date) any {
	if d == nil {
		return nil
	}
	return d.Time.UTC()
}

func scanTestimonial(sc interface{ Scan(...any) error }) (*Testimonial, error) {
	var t Testimonial
	if err := sc.Scan(&t.ID, &t.CustomerName, &t.Review, &t.Rating, &t.Date, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
