// Package vocab defines the MAEC 5.0 open vocabularies as string-typed
// constants. Each vocabulary carries one wire string per entry; values
// outside a vocabulary are still representable, since MAEC vocabularies
// are open, but Valid reports whether a value is a known entry.
package vocab

import "slices"

// AnalysisType distinguishes how a malware instance was analyzed.
type AnalysisType string

const (
	AnalysisStatic      AnalysisType = "static"
	AnalysisDynamic     AnalysisType = "dynamic"
	AnalysisCombination AnalysisType = "combination"
)

// AnalysisConclusion is the verdict of an analysis.
type AnalysisConclusion string

const (
	ConclusionBenign        AnalysisConclusion = "benign"
	ConclusionMalicious     AnalysisConclusion = "malicious"
	ConclusionSuspicious    AnalysisConclusion = "suspicious"
	ConclusionIndeterminate AnalysisConclusion = "indeterminate"
)

// Confidence is the confidence level of an assertion, aligned with the
// STIX high-medium-low vocabulary.
type Confidence string

const (
	ConfidenceLow     Confidence = "low"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceHigh    Confidence = "high"
	ConfidenceNone    Confidence = "none"
	ConfidenceUnknown Confidence = "unknown"
)

// ProcessorArchitecture identifies the architecture a binary targets.
type ProcessorArchitecture string

const (
	ArchX86     ProcessorArchitecture = "x86"
	ArchX8664   ProcessorArchitecture = "x86-64"
	ArchIA64    ProcessorArchitecture = "ia-64"
	ArchPowerPC ProcessorArchitecture = "powerpc"
	ArchARM     ProcessorArchitecture = "arm"
	ArchAlpha   ProcessorArchitecture = "alpha"
	ArchSPARC   ProcessorArchitecture = "sparc"
	ArchMIPS    ProcessorArchitecture = "mips"
)

// ObfuscationMethod names a binary obfuscation technique.
type ObfuscationMethod string

const (
	ObfuscationPacking                 ObfuscationMethod = "packing"
	ObfuscationCodeEncryption          ObfuscationMethod = "code-encryption"
	ObfuscationDeadCodeInsertion       ObfuscationMethod = "dead-code-insertion"
	ObfuscationEntryPoint              ObfuscationMethod = "entry-point-obfuscation"
	ObfuscationImportAddressTable      ObfuscationMethod = "import-address-table-obfuscation"
	ObfuscationInterleavingCode        ObfuscationMethod = "interleaving-code"
	ObfuscationSymbolic                ObfuscationMethod = "symbolic-obfuscation"
	ObfuscationString                  ObfuscationMethod = "string-obfuscation"
	ObfuscationSubroutineReordering    ObfuscationMethod = "subroutine-reordering"
	ObfuscationCodeTransposition       ObfuscationMethod = "code-transposition"
	ObfuscationInstructionSubstitution ObfuscationMethod = "instruction-substitution"
	ObfuscationRegisterReassignment    ObfuscationMethod = "register-reassignment"
)

// DeliveryVector names a distribution or infection vector.
type DeliveryVector string

const (
	DeliveryActiveAttacker        DeliveryVector = "active-attacker"
	DeliveryAutoExecutingMedia    DeliveryVector = "auto-executing-media"
	DeliveryDownloader            DeliveryVector = "downloader"
	DeliveryDropper               DeliveryVector = "dropper"
	DeliveryEmailAttachment       DeliveryVector = "email-attachment"
	DeliveryExploitKitLandingPage DeliveryVector = "exploit-kit-landing-page"
	DeliveryFakeWebsite           DeliveryVector = "fake-website"
	DeliveryJanitorAttack         DeliveryVector = "janitor-attack"
	DeliveryMaliciousIframes      DeliveryVector = "malicious-iframes"
	DeliveryMalvertising          DeliveryVector = "malvertising"
	DeliveryMediaBaiting          DeliveryVector = "media-baiting"
	DeliveryPharming              DeliveryVector = "pharming"
	DeliveryPhishing              DeliveryVector = "phishing"
	DeliveryTrojanizedLink        DeliveryVector = "trojanized-link"
	DeliveryTrojanizedSoftware    DeliveryVector = "trojanized-software"
	DeliveryUSBCableSyncing       DeliveryVector = "usb-cable-syncing"
	DeliveryWateringHole          DeliveryVector = "watering-hole"
)

// MalwareLabel classifies a malware family or instance.
type MalwareLabel string

const (
	LabelAdware         MalwareLabel = "adware"
	LabelBackdoor       MalwareLabel = "backdoor"
	LabelBot            MalwareLabel = "bot"
	LabelClicker        MalwareLabel = "clicker"
	LabelDownloader     MalwareLabel = "downloader"
	LabelDropperFile    MalwareLabel = "dropper-file"
	LabelGreyware       MalwareLabel = "greyware"
	LabelImplant        MalwareLabel = "implant"
	LabelKeylogger      MalwareLabel = "keylogger"
	LabelMassMailer     MalwareLabel = "mass-mailer"
	LabelMobileCode     MalwareLabel = "mobile-code"
	LabelPasswordStealer MalwareLabel = "password-stealer"
	LabelRansomware     MalwareLabel = "ransomware"
	LabelRootkit        MalwareLabel = "rootkit"
	LabelScareware      MalwareLabel = "scareware"
	LabelShellcode      MalwareLabel = "shellcode"
	LabelSpyware        MalwareLabel = "spyware"
	LabelTrojanHorse    MalwareLabel = "trojan-horse"
	LabelVirus          MalwareLabel = "virus"
	LabelWiper          MalwareLabel = "wiper"
	LabelWorm           MalwareLabel = "worm"
)

// EntityAssociation describes why objects are grouped in a collection.
type EntityAssociation string

const (
	AssocFileSystemEntities  EntityAssociation = "file-system-entities"
	AssocNetworkEntities     EntityAssociation = "network-entities"
	AssocProcessEntities     EntityAssociation = "process-entities"
	AssocMemoryEntities      EntityAssociation = "memory-entities"
	AssocRegistryEntities    EntityAssociation = "registry-entities"
	AssocPotentialIndicators EntityAssociation = "potential-indicators"
	AssocSameMalwareFamily   EntityAssociation = "same-malware-family"
	AssocClusteredTogether   EntityAssociation = "clustered-together"
	AssocObservedTogether    EntityAssociation = "observed-together"
	AssocPartOfIntrusionSet  EntityAssociation = "part-of-intrusion-set"
	AssocSameMalwareToolkit  EntityAssociation = "same-malware-toolkit"
)

// Behavior names an observed malware behavior.
type Behavior string

const (
	BehaviorAntiDebugging             Behavior = "anti-debugging"
	BehaviorAntiDisassembly           Behavior = "anti-disassembly"
	BehaviorAntiEmulation             Behavior = "anti-emulation"
	BehaviorAntiMemoryForensics       Behavior = "anti-memory-forensics"
	BehaviorAntiSandbox               Behavior = "anti-sandbox"
	BehaviorAntiVM                    Behavior = "anti-virtual-machine"
	BehaviorCaptureCameraInput        Behavior = "capture-camera-input"
	BehaviorCaptureFileSystem         Behavior = "capture-file-system"
	BehaviorCaptureKeyboardInput      Behavior = "capture-keyboard-input"
	BehaviorCaptureSystemScreenshot   Behavior = "capture-system-screenshot"
	BehaviorCheckForPayload           Behavior = "check-for-payload"
	BehaviorCleanTracesOfInfection    Behavior = "clean-traces-of-infection"
	BehaviorCommunicateWithC2Server   Behavior = "communicate-with-c2-server"
	BehaviorControlLocalMachineViaRemoteCommand Behavior = "control-local-machine-via-remote-command"
	BehaviorDegradeSecurityPrograms   Behavior = "degrade-security-programs"
	BehaviorDetectSandboxEnvironment  Behavior = "detect-sandbox-environment"
	BehaviorDisableOSSecurityAlerts   Behavior = "disable-os-security-alerts"
	BehaviorElevatePrivilege          Behavior = "elevate-privilege"
	BehaviorEncryptFiles              Behavior = "encrypt-files"
	BehaviorEraseData                 Behavior = "erase-data"
	BehaviorExfiltrateViaCovertChannel Behavior = "exfiltrate-data-via-covert-channel"
	BehaviorHideArtifacts             Behavior = "hide-artifacts"
	BehaviorHideExecutingCode         Behavior = "hide-executing-code"
	BehaviorInstallBackdoor           Behavior = "install-backdoor"
	BehaviorInstallOtherMalware       Behavior = "install-other-malware"
	BehaviorInterceptNetworkTraffic   Behavior = "intercept-network-traffic"
	BehaviorObfuscateArtifactProperties Behavior = "obfuscate-artifact-properties"
	BehaviorPersistAfterSystemReboot  Behavior = "persist-after-system-reboot"
	BehaviorPreventArtifactAccess     Behavior = "prevent-artifact-access"
	BehaviorStealBrowserCacheData     Behavior = "steal-browser-cache-data"
	BehaviorStealPasswordHashes       Behavior = "steal-password-hashes"
)

// MalwareAction names a discrete system-level action taken by malware.
type MalwareAction string

const (
	ActionAllocateMemory      MalwareAction = "allocate-memory"
	ActionCaptureScreenshot   MalwareAction = "capture-screenshot"
	ActionConnectToIPAddress  MalwareAction = "connect-to-ip-address"
	ActionConnectToURL        MalwareAction = "connect-to-url"
	ActionCreateFile          MalwareAction = "create-file"
	ActionCreateMutex         MalwareAction = "create-mutex"
	ActionCreateProcess       MalwareAction = "create-process"
	ActionCreateRegistryKey   MalwareAction = "create-registry-key"
	ActionCreateService       MalwareAction = "create-service"
	ActionDeleteFile          MalwareAction = "delete-file"
	ActionDeleteRegistryKey   MalwareAction = "delete-registry-key"
	ActionEnumerateProcesses  MalwareAction = "enumerate-processes"
	ActionInjectCode          MalwareAction = "inject-code"
	ActionKillProcess         MalwareAction = "kill-process"
	ActionLoadLibrary         MalwareAction = "load-library"
	ActionModifyFile          MalwareAction = "modify-file"
	ActionModifyRegistryKeyValue MalwareAction = "modify-registry-key-value"
	ActionOpenRegistryKey     MalwareAction = "open-registry-key"
	ActionReadFile            MalwareAction = "read-file"
	ActionSendDNSQuery        MalwareAction = "send-dns-query"
	ActionSendEmailMessage    MalwareAction = "send-email-message"
	ActionSendHTTPGetRequest  MalwareAction = "send-http-get-request"
	ActionSendHTTPPostRequest MalwareAction = "send-http-post-request"
	ActionWriteToFile         MalwareAction = "write-to-file"
)

var analysisTypes = []AnalysisType{
	AnalysisStatic, AnalysisDynamic, AnalysisCombination,
}

var conclusions = []AnalysisConclusion{
	ConclusionBenign, ConclusionMalicious, ConclusionSuspicious,
	ConclusionIndeterminate,
}

var confidences = []Confidence{
	ConfidenceLow, ConfidenceMedium, ConfidenceHigh, ConfidenceNone,
	ConfidenceUnknown,
}

var architectures = []ProcessorArchitecture{
	ArchX86, ArchX8664, ArchIA64, ArchPowerPC, ArchARM, ArchAlpha,
	ArchSPARC, ArchMIPS,
}

var obfuscations = []ObfuscationMethod{
	ObfuscationPacking, ObfuscationCodeEncryption,
	ObfuscationDeadCodeInsertion, ObfuscationEntryPoint,
	ObfuscationImportAddressTable, ObfuscationInterleavingCode,
	ObfuscationSymbolic, ObfuscationString,
	ObfuscationSubroutineReordering, ObfuscationCodeTransposition,
	ObfuscationInstructionSubstitution, ObfuscationRegisterReassignment,
}

var associations = []EntityAssociation{
	AssocFileSystemEntities, AssocNetworkEntities, AssocProcessEntities,
	AssocMemoryEntities, AssocRegistryEntities, AssocPotentialIndicators,
	AssocSameMalwareFamily, AssocClusteredTogether, AssocObservedTogether,
	AssocPartOfIntrusionSet, AssocSameMalwareToolkit,
}

var behaviors = []Behavior{
	BehaviorAntiDebugging, BehaviorAntiDisassembly, BehaviorAntiEmulation,
	BehaviorAntiMemoryForensics, BehaviorAntiSandbox, BehaviorAntiVM,
	BehaviorCaptureCameraInput, BehaviorCaptureFileSystem,
	BehaviorCaptureKeyboardInput, BehaviorCaptureSystemScreenshot,
	BehaviorCheckForPayload, BehaviorCleanTracesOfInfection,
	BehaviorCommunicateWithC2Server, BehaviorControlLocalMachineViaRemoteCommand,
	BehaviorDegradeSecurityPrograms, BehaviorDetectSandboxEnvironment,
	BehaviorDisableOSSecurityAlerts, BehaviorElevatePrivilege,
	BehaviorEncryptFiles, BehaviorEraseData, BehaviorExfiltrateViaCovertChannel,
	BehaviorHideArtifacts, BehaviorHideExecutingCode, BehaviorInstallBackdoor,
	BehaviorInstallOtherMalware, BehaviorInterceptNetworkTraffic,
	BehaviorObfuscateArtifactProperties, BehaviorPersistAfterSystemReboot,
	BehaviorPreventArtifactAccess, BehaviorStealBrowserCacheData,
	BehaviorStealPasswordHashes,
}

var actions = []MalwareAction{
	ActionAllocateMemory, ActionCaptureScreenshot, ActionConnectToIPAddress,
	ActionConnectToURL, ActionCreateFile, ActionCreateMutex,
	ActionCreateProcess, ActionCreateRegistryKey, ActionCreateService,
	ActionDeleteFile, ActionDeleteRegistryKey, ActionEnumerateProcesses,
	ActionInjectCode, ActionKillProcess, ActionLoadLibrary, ActionModifyFile,
	ActionModifyRegistryKeyValue, ActionOpenRegistryKey, ActionReadFile,
	ActionSendDNSQuery, ActionSendEmailMessage, ActionSendHTTPGetRequest,
	ActionSendHTTPPostRequest, ActionWriteToFile,
}

var labels = []MalwareLabel{
	LabelAdware, LabelBackdoor, LabelBot, LabelClicker, LabelDownloader,
	LabelDropperFile, LabelGreyware, LabelImplant, LabelKeylogger,
	LabelMassMailer, LabelMobileCode, LabelPasswordStealer, LabelRansomware,
	LabelRootkit, LabelScareware, LabelShellcode, LabelSpyware,
	LabelTrojanHorse, LabelVirus, LabelWiper, LabelWorm,
}

var deliveryVectors = []DeliveryVector{
	DeliveryActiveAttacker, DeliveryAutoExecutingMedia, DeliveryDownloader,
	DeliveryDropper, DeliveryEmailAttachment, DeliveryExploitKitLandingPage,
	DeliveryFakeWebsite, DeliveryJanitorAttack, DeliveryMaliciousIframes,
	DeliveryMalvertising, DeliveryMediaBaiting, DeliveryPharming,
	DeliveryPhishing, DeliveryTrojanizedLink, DeliveryTrojanizedSoftware,
	DeliveryUSBCableSyncing, DeliveryWateringHole,
}

// Behaviors lists the known behavior vocabulary entries.
func Behaviors() []Behavior { return slices.Clone(behaviors) }

// Valid reports whether b is a known behavior vocabulary entry.
func (b Behavior) Valid() bool { return slices.Contains(behaviors, b) }

// MalwareActions lists the known malware action vocabulary entries.
func MalwareActions() []MalwareAction { return slices.Clone(actions) }

// Valid reports whether a is a known malware action vocabulary entry.
func (a MalwareAction) Valid() bool { return slices.Contains(actions, a) }

// MalwareLabels lists the known malware label vocabulary entries.
func MalwareLabels() []MalwareLabel { return slices.Clone(labels) }

// Valid reports whether l is a known malware label vocabulary entry.
func (l MalwareLabel) Valid() bool { return slices.Contains(labels, l) }

// DeliveryVectors lists the known delivery vector vocabulary entries.
func DeliveryVectors() []DeliveryVector { return slices.Clone(deliveryVectors) }

// Valid reports whether v is a known delivery vector vocabulary entry.
func (v DeliveryVector) Valid() bool { return slices.Contains(deliveryVectors, v) }

// AnalysisTypes lists the known analysis type vocabulary entries.
func AnalysisTypes() []AnalysisType { return slices.Clone(analysisTypes) }

// Valid reports whether t is a known analysis type vocabulary entry.
func (t AnalysisType) Valid() bool { return slices.Contains(analysisTypes, t) }

// AnalysisConclusions lists the known analysis conclusion entries.
func AnalysisConclusions() []AnalysisConclusion { return slices.Clone(conclusions) }

// Valid reports whether c is a known analysis conclusion entry.
func (c AnalysisConclusion) Valid() bool { return slices.Contains(conclusions, c) }

// Confidences lists the known confidence vocabulary entries.
func Confidences() []Confidence { return slices.Clone(confidences) }

// Valid reports whether c is a known confidence vocabulary entry.
func (c Confidence) Valid() bool { return slices.Contains(confidences, c) }

// ProcessorArchitectures lists the known architecture entries.
func ProcessorArchitectures() []ProcessorArchitecture { return slices.Clone(architectures) }

// Valid reports whether a is a known architecture vocabulary entry.
func (a ProcessorArchitecture) Valid() bool { return slices.Contains(architectures, a) }

// ObfuscationMethods lists the known obfuscation method entries.
func ObfuscationMethods() []ObfuscationMethod { return slices.Clone(obfuscations) }

// Valid reports whether m is a known obfuscation method entry.
func (m ObfuscationMethod) Valid() bool { return slices.Contains(obfuscations, m) }

// EntityAssociations lists the known entity association entries.
func EntityAssociations() []EntityAssociation { return slices.Clone(associations) }

// Valid reports whether a is a known entity association entry.
func (a EntityAssociation) Valid() bool { return slices.Contains(associations, a) }
