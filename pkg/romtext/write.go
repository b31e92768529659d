package romtext

import "errors"

// WriteBack は各レコードの Text をエンコードしてROMの元の位置に書き戻します。
// 終端の後ろはレコードの長さまで0x00で埋めます。
// 収まらないレコードや範囲外のレコードは書き込まずに飛ばし、
// 残りのレコードの処理を続けます。失敗したレコードのエラーはまとめて返します。
func WriteBack(rom []byte, records []Record, enc Encoder) (int, error) {
	var errs []error
	written := 0
	for _, r := range records {
		if err := writeRecord(rom, r, enc); err != nil {
			errs = append(errs, err)
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

func writeRecord(rom []byte, r Record, enc Encoder) error {
	if err := r.Validate(); err != nil {
		return &RecordError{Offset: r.Offset, Length: r.Length, Err: err}
	}
	if r.Offset > len(rom) || r.Length > len(rom)-r.Offset {
		return &RecordError{Offset: r.Offset, Length: r.Length, Err: ErrOutOfBounds}
	}

	encoded := enc.Encode(r.Text)
	if len(encoded) >= r.Length {
		return &RecordError{
			Offset: r.Offset,
			Length: r.Length,
			Need:   len(encoded) + 1,
			Err:    ErrTextTooLong,
		}
	}

	slot := rom[r.Offset : r.Offset+r.Length]
	n := copy(slot, encoded)
	clear(slot[n:])
	return nil
}
