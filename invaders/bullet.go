package invaders

// NoRow is the row sentinel of an inactive bullet
const NoRow = -1

// BulletState tracks the single shot in flight
// Inactive bullets carry Column 0 and Row NoRow
type BulletState struct {
	Active bool
	Column int
	Row    int
}

var noBullet = BulletState{Column: 0, Row: NoRow}

func (b *BulletState) reset() {
	*b = noBullet
}
