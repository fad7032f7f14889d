package domain

type Flight struct {
	Number      int    `json:"number"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	TotalSeats  int    `json:"total_seats"`
	BookedSeats int    `json:"booked_seats"`
}

func (f Flight) HasFreeSeats() bool {
	return f.BookedSeats < f.TotalSeats
}

// BookSeat and CancelSeat keep 0 <= BookedSeats <= TotalSeats.
func (f *Flight) BookSeat() {
	if f.BookedSeats < f.TotalSeats {
		f.BookedSeats++
	}
}

func (f *Flight) CancelSeat() {
	if f.BookedSeats > 0 {
		f.BookedSeats--
	}
}
