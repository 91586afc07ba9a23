package api

import "encoding/json"

// The backend has shipped two listing shapes over time: a bare array and a
// wrapped {files, pagination} object. Both are normalized here, at the
// transport boundary, so nothing deeper ever branches on shape.

// FilePage is one page of file results.
type FilePage struct {
	Files   []Entry
	HasMore bool
}

func (p *FilePage) UnmarshalJSON(data []byte) error {
	var bare []Entry
	if err := json.Unmarshal(data, &bare); err == nil {
		// Legacy shape predates pagination: a bare array is complete.
		p.Files = bare
		p.HasMore = false
		return nil
	}

	var wrapped struct {
		Files      []Entry     `json:"files"`
		Pagination *Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	p.Files = wrapped.Files
	p.HasMore = wrapped.Pagination != nil && wrapped.Pagination.HasMore
	return nil
}

// folderList accepts {folders: [...]} or a bare array.
type folderList []Entry

func (l *folderList) UnmarshalJSON(data []byte) error {
	var bare []Entry
	if err := json.Unmarshal(data, &bare); err == nil {
		*l = bare
		return nil
	}
	var wrapped struct {
		Folders []Entry `json:"folders"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Folders
	return nil
}

// userEnvelope accepts a bare User or one wrapped under a "user" key.
type userEnvelope User

func (u *userEnvelope) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.User != nil {
		*u = userEnvelope(*wrapped.User)
		return nil
	}
	var bare User
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	*u = userEnvelope(bare)
	return nil
}

// entryEnvelope accepts a bare Entry or one wrapped under a "file" or
// "folder" key, as mutation endpoints differ on this.
type entryEnvelope Entry

func (e *entryEnvelope) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		File   *Entry `json:"file"`
		Folder *Entry `json:"folder"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.File != nil {
			*e = entryEnvelope(*wrapped.File)
			return nil
		}
		if wrapped.Folder != nil {
			*e = entryEnvelope(*wrapped.Folder)
			return nil
		}
	}
	var bare Entry
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	*e = entryEnvelope(bare)
	return nil
}
