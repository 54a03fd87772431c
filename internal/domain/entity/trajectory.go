package entity

// Trajectory — упорядоченная история позиций одного канала.
// Запись только добавляется, одна на обработанный кадр.
type Trajectory struct {
	positions []Position
}

// Append добавляет позицию очередного кадра в конец истории.
func (t *Trajectory) Append(p Position) {
	t.positions = append(t.positions, p)
}

// Len возвращает число накопленных позиций.
func (t *Trajectory) Len() int {
	return len(t.positions)
}

// Last возвращает позицию последнего обработанного кадра.
func (t *Trajectory) Last() (Position, bool) {
	if len(t.positions) == 0 {
		return Position{}, false
	}
	return t.positions[len(t.positions)-1], true
}

// Positions возвращает копию истории в порядке прихода кадров.
func (t *Trajectory) Positions() []Position {
	out := make([]Position, len(t.positions))
	copy(out, t.positions)
	return out
}
