// Package apperror holds the error catalog shared by every endpoint: form
// errors raised by field validation and data errors raised by repositories.
package apperror

// Record is the wire representation of a single error.
type Record struct {
	Code         string `json:"Error-Code"`
	Type         string `json:"Error-Type"`
	RenderOutput string `json:"Render-Output"`
	Description  string `json:"Description"`
	Excuse       string `json:"Excuse,omitempty"`
}

type entry struct {
	code        string
	errorType   string
	description string
	excuse      string
}

func (e entry) render(target string) Record {
	return Record{
		Code:         e.code,
		Type:         e.errorType,
		RenderOutput: target,
		Description:  e.description,
		Excuse:       e.excuse,
	}
}

type catalogKey struct {
	kind    DataErrorKind
	subject Subject
}

var dataCatalog = map[catalogKey]entry{
	{NoResultFound, SubjectRecord}: {
		code:        "01-1",
		errorType:   "No-Result-Found:",
		description: "Mhhh... It seems you do not have submitted any data yet",
		excuse:      "We are sorry, but it seems we do not have any records about the requested source.",
	},
	{NoResultFound, SubjectUser}: {
		code:        "01-2",
		errorType:   "No-User-Found:",
		description: "Mhhh... It seems you do not have any account yet - Please create one first, before you try to log-in",
		excuse:      "We are sorry, but it seems we do not have any records about the requested source.",
	},
	{IntegrityConstraintViolated, SubjectRecord}: {
		code:        "02-1",
		errorType:   "Already-Existing-Record-Found:",
		description: "Mhhh... It seems a similar record is already existing but has to be unique! Therefore your record-submission failed!",
		excuse:      "We are sorry, but it seems a similar record is already existing.",
	},
	{IntegrityConstraintViolated, SubjectUser}: {
		code:        "02-2",
		errorType:   "Already-Existing-User-Found:",
		description: "Mhhh... It seems that this E-Mail Address is already in use and therefore not available for registration!",
		excuse:      "We are sorry, but it seems this email is already taken.",
	},
	{QueryCompileError, SubjectRecord}: {
		code:        "03-1",
		errorType:   "Compile Error:",
		description: "Mhhh... It seems an error occured during SQL compilation. Therefore your request could not be executed.",
		excuse:      "We are sorry, but it seems an error occured during SQL compilation.",
	},
	{StoreProtocolError, SubjectRecord}: {
		code:        "04-1",
		errorType:   "DBAPI-Error:",
		description: "Mhhh... It seems there is an error from the DB-API. The execution of the database operation failed!",
		excuse:      "We are sorry, but it seems there is an error from the DB-API.",
	},
	{StoreInternalError, SubjectRecord}: {
		code:        "05-1",
		errorType:   "Internal Error:",
		description: "Mhhh... It seems an internal error occurred in the DB!",
		excuse:      "We are sorry, but it seems there is an internal error in the DB.",
	},
	{MultipleResultsFound, SubjectRecord}: {
		code:        "06-1",
		errorType:   "Multi-Records-Found:",
		description: "Mhhh... It seems a single database result was asked for but more than one were found.",
		excuse:      "We are sorry, but it seems there are multiple records.",
	},
	{MultipleResultsFound, SubjectUser}: {
		code:        "06-2",
		errorType:   "Multi-User-Found:",
		description: "Mhhh... It seems you asked for a single user but more than one were found.",
		excuse:      "We are sorry, but it seems there are several users instead of one.",
	},
	{DanglingReference, SubjectRecord}: {
		code:        "07-1",
		errorType:   "No-Referenced-Table:",
		description: "Mhhh... It seems a foreign key triggered this error since the referred table could not be found.",
		excuse:      "We are sorry, but a table referenced through a foreign key could not be located.",
	},
	{NonExecutableOperation, SubjectRecord}: {
		code:        "08-1",
		errorType:   "Object-Not-Executable",
		description: "Mhhh... It seems an object was passed to the store and it can not be executed as a query.",
		excuse:      "We are sorry but this object can not be executed.",
	},
	{GenericStoreError, SubjectRecord}: {
		code:        "10-1",
		errorType:   "Generic-Store-Error:",
		description: "Mhhh... It seems something went wrong in the database layer. A not further specified error occured.",
		excuse:      "We are sorry but an unspecified error occured.",
	},
	{InvalidCredentials, SubjectUser}: {
		code:        "14-3",
		errorType:   "Invalid-Credentials:",
		description: "Invalid E-Mail Address or Password!",
	},
}

func dataRecord(kind DataErrorKind, subject Subject, target string) Record {
	if e, ok := dataCatalog[catalogKey{kind, subject}]; ok {
		return e.render(target)
	}
	// kinds without a user variant fall back to the record wording
	if e, ok := dataCatalog[catalogKey{kind, SubjectRecord}]; ok {
		return e.render(target)
	}
	if e, ok := dataCatalog[catalogKey{kind, SubjectUser}]; ok {
		return e.render(target)
	}
	return dataCatalog[catalogKey{GenericStoreError, SubjectRecord}].render(target)
}
