package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	LookingForImages              string
	NoMatchingImages              string
	ConfirmDelete                 string
	LeavingImagesAlone            string
	RemovingImage                 string
	ErrorOccurred                 string
	ConnectionFailed              string
	CannotAccessDockerSocketError string
	MissingQuery                  string
	InputClosed                   string
	ImageInUse                    string
	ImageNotFound                 string
	RemovalFailed                 string
}

func englishSet() TranslationSet {
	return TranslationSet{
		LookingForImages:              `Looking for local Docker images matching: "{{query}}"`,
		NoMatchingImages:              "Sorry, no matching images found!",
		ConfirmDelete:                 "Delete these Docker images? [y/N]",
		LeavingImagesAlone:            "Exiting, will leave your images alone!",
		RemovingImage:                 "Removing {{id}}",
		ErrorOccurred:                 "An error occurred! Please create an issue at https://github.com/revsys/dic/issues",
		ConnectionFailed:              "connection to the docker daemon failed. Is docker (or podman) running?",
		CannotAccessDockerSocketError: "Can't access the docker socket.\nRun dic as root or read https://docs.docker.com/engine/install/linux-postinstall/",
		MissingQuery:                  "a QUERY to match image tags against is required",
		InputClosed:                   "no answer could be read from the terminal, leaving your images alone",
		ImageInUse:                    "image {{id}} is in use and could not be removed",
		ImageNotFound:                 "image {{id}} no longer exists",
		RemovalFailed:                 "failed to remove image {{id}}",
	}
}
