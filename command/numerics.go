package command

// Numeric replies a client is expected to see.
const (
	RplWelcome  Command = 1 // "Welcome to the Internet Relay Network <nick>!<user>@<host>"
	RplYourHost Command = 2
	RplCreated  Command = 3
	RplMyInfo   Command = 4
	RplISupport Command = 5
	RplBounce   Command = 10

	RplUModeIs         Command = 221
	RplLUserClient     Command = 251
	RplLUserOp         Command = 252
	RplLUserUnknown    Command = 253
	RplLUserChannels   Command = 254
	RplLUserMe         Command = 255
	RplAdminMe         Command = 256
	RplAdminLoc1       Command = 257
	RplAdminLoc2       Command = 258
	RplAdminEmail      Command = 259
	RplTryAgain        Command = 263
	RplLocalUsers      Command = 265
	RplGlobalUsers     Command = 266
	RplStatsConn       Command = 250
	RplAway            Command = 301
	RplUserHost        Command = 302
	RplIsOn            Command = 303
	RplUnAway          Command = 305
	RplNowAway         Command = 306
	RplWhoisUser       Command = 311
	RplWhoisServer     Command = 312
	RplWhoisOperator   Command = 313
	RplWhowasUser      Command = 314
	RplEndOfWho        Command = 315
	RplWhoisIdle       Command = 317
	RplEndOfWhois      Command = 318
	RplWhoisChannels   Command = 319
	RplListStart       Command = 321
	RplList            Command = 322
	RplListEnd         Command = 323
	RplChannelModeIs   Command = 324
	RplCreationTime    Command = 329
	RplWhoisAccount    Command = 330
	RplNoTopic         Command = 331
	RplTopic           Command = 332
	RplTopicWhoTime    Command = 333
	RplInviting        Command = 341
	RplInviteList      Command = 346
	RplEndOfInviteList Command = 347
	RplExceptList      Command = 348
	RplEndOfExceptList Command = 349
	RplVersion         Command = 351
	RplWhoReply        Command = 352
	RplNamReply        Command = 353
	RplWhoSpcRpl       Command = 354
	RplLinks           Command = 364
	RplEndOfLinks      Command = 365
	RplEndOfNames      Command = 366
	RplBanList         Command = 367
	RplEndOfBanList    Command = 368
	RplEndOfWhowas     Command = 369
	RplInfo            Command = 371
	RplMotd            Command = 372
	RplEndOfInfo       Command = 374
	RplMotdStart       Command = 375
	RplEndOfMotd       Command = 376
	RplYoureOper       Command = 381
	RplTime            Command = 391
	RplHostHidden      Command = 396

	ErrNoSuchNick        Command = 401
	ErrNoSuchServer      Command = 402
	ErrNoSuchChannel     Command = 403
	ErrCannotSendToChan  Command = 404
	ErrTooManyChannels   Command = 405
	ErrWasNoSuchNick     Command = 406
	ErrNoOrigin          Command = 409
	ErrNoRecipient       Command = 411
	ErrNoTextToSend      Command = 412
	ErrInputTooLong      Command = 417
	ErrUnknownCmd        Command = 421
	ErrNoMotd            Command = 422
	ErrNoNicknameGiven   Command = 431
	ErrErroneusNickname  Command = 432
	ErrNicknameInUse     Command = 433
	ErrNickCollision     Command = 436
	ErrUnavailResource   Command = 437
	ErrUserNotInChannel  Command = 441
	ErrNotOnChannel      Command = 442
	ErrUserOnChannel     Command = 443
	ErrNotRegistered     Command = 451
	ErrNeedMoreParams    Command = 461
	ErrAlreadyRegistered Command = 462
	ErrPasswdMismatch    Command = 464
	ErrYoureBannedCreep  Command = 465
	ErrChannelIsFull     Command = 471
	ErrUnknownMode       Command = 472
	ErrInviteOnlyChan    Command = 473
	ErrBannedFromChan    Command = 474
	ErrBadChannelKey     Command = 475
	ErrBadChanMask       Command = 476
	ErrNoPrivileges      Command = 481
	ErrChanOPrivsNeeded  Command = 482
	ErrCantKillServer    Command = 483
	ErrNoOperHost        Command = 491
	ErrUModeUnknownFlag  Command = 501
	ErrUsersDontMatch    Command = 502
	RplLoggedIn          Command = 900
	RplLoggedOut         Command = 901
	ErrNickLocked        Command = 902
	RplSaslSuccess       Command = 903
	ErrSaslFail          Command = 904
	ErrSaslTooLong       Command = 905
	ErrSaslAborted       Command = 906
	ErrSaslAlready       Command = 907
	RplSaslMechs         Command = 908
	ErrCannotSendToUser  Command = 531
	RplMonOnline         Command = 730
	RplMonOffline        Command = 731
	RplMonList           Command = 732
	RplEndOfMonList      Command = 733
	ErrMonListFull       Command = 734
	ErrStartTLS          Command = 691
	RplStartTLS          Command = 670
	RplWhoisSecure       Command = 671
	ErrInvalidCapCmd     Command = 410
	ErrNoSuchService     Command = 408
	ErrTooManyTargets    Command = 407
	ErrFileError         Command = 424
	ErrNoAdminInfo       Command = 423
	ErrNoNickChange      Command = 447
	ErrBadChanName       Command = 479
	ErrKeySet            Command = 467
	ErrNoChanModes       Command = 477
	ErrBanListFull       Command = 478
	ErrUnknownError      Command = 400
)

var numericNames = map[Command]string{
	RplWelcome:         "RPL_WELCOME",
	RplYourHost:        "RPL_YOURHOST",
	RplCreated:         "RPL_CREATED",
	RplMyInfo:          "RPL_MYINFO",
	RplISupport:        "RPL_ISUPPORT",
	RplBounce:          "RPL_BOUNCE",
	RplUModeIs:         "RPL_UMODEIS",
	RplStatsConn:       "RPL_STATSCONN",
	RplLUserClient:     "RPL_LUSERCLIENT",
	RplLUserOp:         "RPL_LUSEROP",
	RplLUserUnknown:    "RPL_LUSERUNKNOWN",
	RplLUserChannels:   "RPL_LUSERCHANNELS",
	RplLUserMe:         "RPL_LUSERME",
	RplAdminMe:         "RPL_ADMINME",
	RplAdminLoc1:       "RPL_ADMINLOC1",
	RplAdminLoc2:       "RPL_ADMINLOC2",
	RplAdminEmail:      "RPL_ADMINEMAIL",
	RplTryAgain:        "RPL_TRYAGAIN",
	RplLocalUsers:      "RPL_LOCALUSERS",
	RplGlobalUsers:     "RPL_GLOBALUSERS",
	RplAway:            "RPL_AWAY",
	RplUserHost:        "RPL_USERHOST",
	RplIsOn:            "RPL_ISON",
	RplUnAway:          "RPL_UNAWAY",
	RplNowAway:         "RPL_NOWAWAY",
	RplWhoisUser:       "RPL_WHOISUSER",
	RplWhoisServer:     "RPL_WHOISSERVER",
	RplWhoisOperator:   "RPL_WHOISOPERATOR",
	RplWhowasUser:      "RPL_WHOWASUSER",
	RplEndOfWho:        "RPL_ENDOFWHO",
	RplWhoisIdle:       "RPL_WHOISIDLE",
	RplEndOfWhois:      "RPL_ENDOFWHOIS",
	RplWhoisChannels:   "RPL_WHOISCHANNELS",
	RplListStart:       "RPL_LISTSTART",
	RplList:            "RPL_LIST",
	RplListEnd:         "RPL_LISTEND",
	RplChannelModeIs:   "RPL_CHANNELMODEIS",
	RplCreationTime:    "RPL_CREATIONTIME",
	RplWhoisAccount:    "RPL_WHOISACCOUNT",
	RplNoTopic:         "RPL_NOTOPIC",
	RplTopic:           "RPL_TOPIC",
	RplTopicWhoTime:    "RPL_TOPICWHOTIME",
	RplInviting:        "RPL_INVITING",
	RplInviteList:      "RPL_INVITELIST",
	RplEndOfInviteList: "RPL_ENDOFINVITELIST",
	RplExceptList:      "RPL_EXCEPTLIST",
	RplEndOfExceptList: "RPL_ENDOFEXCEPTLIST",
	RplVersion:         "RPL_VERSION",
	RplWhoReply:        "RPL_WHOREPLY",
	RplNamReply:        "RPL_NAMREPLY",
	RplWhoSpcRpl:       "RPL_WHOSPCRPL",
	RplLinks:           "RPL_LINKS",
	RplEndOfLinks:      "RPL_ENDOFLINKS",
	RplEndOfNames:      "RPL_ENDOFNAMES",
	RplBanList:         "RPL_BANLIST",
	RplEndOfBanList:    "RPL_ENDOFBANLIST",
	RplEndOfWhowas:     "RPL_ENDOFWHOWAS",
	RplInfo:            "RPL_INFO",
	RplMotd:            "RPL_MOTD",
	RplEndOfInfo:       "RPL_ENDOFINFO",
	RplMotdStart:       "RPL_MOTDSTART",
	RplEndOfMotd:       "RPL_ENDOFMOTD",
	RplYoureOper:       "RPL_YOUREOPER",
	RplTime:            "RPL_TIME",
	RplHostHidden:      "RPL_HOSTHIDDEN",
	RplStartTLS:        "RPL_STARTTLS",
	RplWhoisSecure:     "RPL_WHOISSECURE",
	RplMonOnline:       "RPL_MONONLINE",
	RplMonOffline:      "RPL_MONOFFLINE",
	RplMonList:         "RPL_MONLIST",
	RplEndOfMonList:    "RPL_ENDOFMONLIST",
	RplLoggedIn:        "RPL_LOGGEDIN",
	RplLoggedOut:       "RPL_LOGGEDOUT",
	RplSaslSuccess:     "RPL_SASLSUCCESS",
	RplSaslMechs:       "RPL_SASLMECHS",

	ErrUnknownError:      "ERR_UNKNOWNERROR",
	ErrNoSuchNick:        "ERR_NOSUCHNICK",
	ErrNoSuchServer:      "ERR_NOSUCHSERVER",
	ErrNoSuchChannel:     "ERR_NOSUCHCHANNEL",
	ErrCannotSendToChan:  "ERR_CANNOTSENDTOCHAN",
	ErrTooManyChannels:   "ERR_TOOMANYCHANNELS",
	ErrWasNoSuchNick:     "ERR_WASNOSUCHNICK",
	ErrTooManyTargets:    "ERR_TOOMANYTARGETS",
	ErrNoSuchService:     "ERR_NOSUCHSERVICE",
	ErrNoOrigin:          "ERR_NOORIGIN",
	ErrInvalidCapCmd:     "ERR_INVALIDCAPCMD",
	ErrNoRecipient:       "ERR_NORECIPIENT",
	ErrNoTextToSend:      "ERR_NOTEXTTOSEND",
	ErrInputTooLong:      "ERR_INPUTTOOLONG",
	ErrUnknownCmd:        "ERR_UNKNOWNCOMMAND",
	ErrNoMotd:            "ERR_NOMOTD",
	ErrNoAdminInfo:       "ERR_NOADMININFO",
	ErrFileError:         "ERR_FILEERROR",
	ErrNoNicknameGiven:   "ERR_NONICKNAMEGIVEN",
	ErrErroneusNickname:  "ERR_ERRONEUSNICKNAME",
	ErrNicknameInUse:     "ERR_NICKNAMEINUSE",
	ErrNickCollision:     "ERR_NICKCOLLISION",
	ErrUnavailResource:   "ERR_UNAVAILRESOURCE",
	ErrUserNotInChannel:  "ERR_USERNOTINCHANNEL",
	ErrNotOnChannel:      "ERR_NOTONCHANNEL",
	ErrUserOnChannel:     "ERR_USERONCHANNEL",
	ErrNoNickChange:      "ERR_NONICKCHANGE",
	ErrNotRegistered:     "ERR_NOTREGISTERED",
	ErrNeedMoreParams:    "ERR_NEEDMOREPARAMS",
	ErrAlreadyRegistered: "ERR_ALREADYREGISTERED",
	ErrPasswdMismatch:    "ERR_PASSWDMISMATCH",
	ErrYoureBannedCreep:  "ERR_YOUREBANNEDCREEP",
	ErrKeySet:            "ERR_KEYSET",
	ErrChannelIsFull:     "ERR_CHANNELISFULL",
	ErrUnknownMode:       "ERR_UNKNOWNMODE",
	ErrInviteOnlyChan:    "ERR_INVITEONLYCHAN",
	ErrBannedFromChan:    "ERR_BANNEDFROMCHAN",
	ErrBadChannelKey:     "ERR_BADCHANNELKEY",
	ErrBadChanMask:       "ERR_BADCHANMASK",
	ErrNoChanModes:       "ERR_NOCHANMODES",
	ErrBanListFull:       "ERR_BANLISTFULL",
	ErrBadChanName:       "ERR_BADCHANNAME",
	ErrNoPrivileges:      "ERR_NOPRIVILEGES",
	ErrChanOPrivsNeeded:  "ERR_CHANOPRIVSNEEDED",
	ErrCantKillServer:    "ERR_CANTKILLSERVER",
	ErrNoOperHost:        "ERR_NOOPERHOST",
	ErrUModeUnknownFlag:  "ERR_UMODEUNKNOWNFLAG",
	ErrUsersDontMatch:    "ERR_USERSDONTMATCH",
	ErrCannotSendToUser:  "ERR_CANNOTSENDTOUSER",
	ErrStartTLS:          "ERR_STARTTLS",
	ErrMonListFull:       "ERR_MONLISTFULL",
	ErrNickLocked:        "ERR_NICKLOCKED",
	ErrSaslFail:          "ERR_SASLFAIL",
	ErrSaslTooLong:       "ERR_SASLTOOLONG",
	ErrSaslAborted:       "ERR_SASLABORTED",
	ErrSaslAlready:       "ERR_SASLALREADY",
}
