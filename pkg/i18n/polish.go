package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		LookingForImages:              `Szukam lokalnych obrazów Dockera pasujących do: "{{query}}"`,
		NoMatchingImages:              "Niestety, nie znaleziono pasujących obrazów!",
		ConfirmDelete:                 "Usunąć te obrazy Dockera? [y/N]",
		LeavingImagesAlone:            "Kończę, twoje obrazy pozostaną nietknięte!",
		RemovingImage:                 "Usuwanie {{id}}",
		ErrorOccurred:                 "Wystąpił błąd! Zgłoś problem na https://github.com/revsys/dic/issues",
		ConnectionFailed:              "nie udało się połączyć z demonem dockera. Czy docker (lub podman) jest uruchomiony?",
		CannotAccessDockerSocketError: "Brak dostępu do gniazda dockera.\nUruchom dic jako root lub przeczytaj https://docs.docker.com/engine/install/linux-postinstall/",
		MissingQuery:                  "wymagany jest argument QUERY, do którego dopasowywane są tagi obrazów",
		InputClosed:                   "nie udało się odczytać odpowiedzi z terminala, obrazy pozostają nietknięte",
		ImageInUse:                    "obraz {{id}} jest w użyciu i nie mógł zostać usunięty",
		ImageNotFound:                 "obraz {{id}} już nie istnieje",
		RemovalFailed:                 "nie udało się usunąć obrazu {{id}}",
	}
}
